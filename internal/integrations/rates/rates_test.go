package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2026-08-28">
			<Cube currency="USD" rate="1.0850"/>
			<Cube currency="JPY" rate="163.50"/>
			<Cube currency="GBP" rate="0.8420"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseRates(t *testing.T) {
	quoted, err := parseRates([]byte(sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, 1.0, quoted["EUR"])
	assert.Equal(t, 1.0850, quoted["USD"])
	assert.Equal(t, 163.50, quoted["JPY"])
	assert.Equal(t, 0.8420, quoted["GBP"])
}

func TestParseRatesRejectsBadFeed(t *testing.T) {
	_, err := parseRates([]byte("not xml at all <"))
	assert.Error(t, err)

	_, err = parseRates([]byte(`<Envelope><Cube><Cube time="2026-08-28"/></Cube></Envelope>`))
	assert.Error(t, err, "feed without rate entries")

	_, err = parseRates([]byte(`<Envelope><Cube><Cube currency="USD" rate="abc"/></Cube></Envelope>`))
	assert.Error(t, err, "unparseable rate value")

	_, err = parseRates([]byte(`<Envelope><Cube><Cube currency="USD" rate="-1"/></Cube></Envelope>`))
	assert.Error(t, err, "non-positive rate")
}

func TestDollarRates(t *testing.T) {
	quoted, err := parseRates([]byte(sampleFeed))
	require.NoError(t, err)

	rates, err := dollarRates(quoted)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rates["USD"])
	assert.InDelta(t, 1/1.0850, rates["EUR"], 1e-9)
	assert.InDelta(t, 163.50/1.0850, rates["JPY"], 1e-9)
}

func TestDollarRatesRequiresUSD(t *testing.T) {
	_, err := dollarRates(map[string]float64{"EUR": 1, "JPY": 163.50})
	assert.Error(t, err)
}
