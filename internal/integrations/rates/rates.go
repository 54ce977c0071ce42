package rates

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/config"
)

// cacheTTL keeps one fetch per feed publication cycle; the ECB reference
// rates update once per working day.
const cacheTTL = 12 * time.Hour

// Client fetches daily FX reference rates from the ECB XML feed.
// All rates in the feed are quoted against EUR.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger

	mu        sync.Mutex
	cached    map[string]float64
	fetchedAt time.Time
}

// NewClient initializes a new rates client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.RatesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the raw XML feed
func (c *Client) fetch() ([]byte, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("rates XML response: %d bytes", len(body))
	return body, nil
}

// parseRates extracts currency/rate pairs from the feed XML
func parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	cubes := doc.FindElements("//Cube[@currency]")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	rates := map[string]float64{"EUR": 1.0}
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		rateAttr := cube.SelectAttrValue("rate", "")
		if currency == "" || rateAttr == "" {
			continue
		}
		rate, err := strconv.ParseFloat(rateAttr, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %v", currency, err)
		}
		rates[strings.ToUpper(currency)] = rate
	}
	return rates, nil
}

// GetRates returns the EUR-quoted rate table, served from cache when fresh
func (c *Client) GetRates() (map[string]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < cacheTTL {
		return c.cached, nil
	}

	body, err := c.fetch()
	if err != nil {
		return nil, err
	}

	rates, err := parseRates(body)
	if err != nil {
		return nil, err
	}

	c.cached = rates
	c.fetchedAt = time.Now()
	c.log.Infof("Fetched %d FX reference rates", len(rates))
	return rates, nil
}

// Convert translates an amount between two currencies via the EUR cross rate
func (c *Client) Convert(amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amount, nil
	}

	rates, err := c.GetRates()
	if err != nil {
		return 0, err
	}

	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("unknown currency: %s", from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency: %s", to)
	}

	return amount / fromRate * toRate, nil
}
