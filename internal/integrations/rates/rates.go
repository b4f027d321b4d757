package rates

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"github.com/ubelabs/expense-tracker/internal/config"
	"github.com/ubelabs/expense-tracker/internal/repository"
)

// Client refreshes currency rates from the ECB daily reference-rate feed
type Client struct {
	url    string
	client *http.Client
	repo   *repository.Repository
	log    *logrus.Logger
}

// NewClient initializes a new rates client
func NewClient(cfg *config.Config, repo *repository.Repository, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.RatesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		repo: repo,
		log:  log,
	}
}

func (c *Client) fetch() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("ECB XML response: %s", string(body))
	return body, nil
}

// parseRates extracts the EUR-quoted rates from the ECB daily XML.
// EUR itself is included with rate 1.
func parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	cubes := doc.FindElements("//Cube[@currency]")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	quoted := map[string]float64{"EUR": 1}
	for _, cube := range cubes {
		code := cube.SelectAttrValue("currency", "")
		rateText := cube.SelectAttrValue("rate", "")
		rate, err := strconv.ParseFloat(rateText, 64)
		if err != nil || code == "" || rate <= 0 {
			return nil, fmt.Errorf("malformed rate entry: currency=%q rate=%q", code, rateText)
		}
		quoted[code] = rate
	}
	return quoted, nil
}

// dollarRates re-bases EUR-quoted rates to dollar-to-currency rates
func dollarRates(quoted map[string]float64) (map[string]float64, error) {
	usd, ok := quoted["USD"]
	if !ok || usd <= 0 {
		return nil, fmt.Errorf("feed is missing a usable USD rate")
	}
	rates := make(map[string]float64, len(quoted))
	for code, rate := range quoted {
		rates[code] = rate / usd
	}
	return rates, nil
}

// Refresh fetches the daily feed and updates every currency the tracker
// knows about. Codes absent from the currency table are skipped; on any
// failure existing rates are left untouched.
func (c *Client) Refresh() error {
	body, err := c.fetch()
	if err != nil {
		return err
	}

	quoted, err := parseRates(body)
	if err != nil {
		return err
	}

	rates, err := dollarRates(quoted)
	if err != nil {
		return err
	}

	updated := 0
	for code, rate := range rates {
		ok, err := c.repo.UpdateCurrencyRate(code, rate)
		if err != nil {
			c.log.Errorf("Failed to update rate for %s: %v", code, err)
			continue
		}
		if ok {
			updated++
		}
	}

	c.log.Infof("Currency rates refreshed: %d updated from %d feed entries", updated, len(rates))
	return nil
}
