package rates

import (
	"math"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2026-08-28">
			<Cube currency="USD" rate="1.0842"/>
			<Cube currency="IDR" rate="17635.21"/>
			<Cube currency="SGD" rate="1.4512"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseRates(t *testing.T) {
	rates, err := parseRates([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("parseRates failed: %v", err)
	}

	want := map[string]float64{
		"EUR": 1.0,
		"USD": 1.0842,
		"IDR": 17635.21,
		"SGD": 1.4512,
	}
	if len(rates) != len(want) {
		t.Fatalf("got %d rates, want %d", len(rates), len(want))
	}
	for currency, rate := range want {
		if rates[currency] != rate {
			t.Errorf("rates[%s] = %v, want %v", currency, rates[currency], rate)
		}
	}
}

func TestParseRatesEmptyFeed(t *testing.T) {
	if _, err := parseRates([]byte(`<Envelope><Cube/></Envelope>`)); err == nil {
		t.Fatal("expected error for feed without rate cubes")
	}
}

func TestParseRatesMalformedXML(t *testing.T) {
	if _, err := parseRates([]byte(`not xml at all`)); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestConvertUsesCrossRate(t *testing.T) {
	c := &Client{}
	c.cached = map[string]float64{"EUR": 1.0, "USD": 1.0842, "IDR": 17635.21}
	c.fetchedAt = time.Now()

	// 100 USD -> IDR via EUR
	got, err := c.Convert(100, "USD", "IDR")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := 100 / 1.0842 * 17635.21
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Convert = %v, want %v", got, want)
	}

	// same currency needs no rate table
	same, err := (&Client{}).Convert(42, "IDR", "IDR")
	if err != nil {
		t.Fatalf("Convert same currency failed: %v", err)
	}
	if same != 42 {
		t.Errorf("Convert same currency = %v, want 42", same)
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	c := &Client{}
	c.cached = map[string]float64{"EUR": 1.0}
	c.fetchedAt = time.Now()

	if _, err := c.Convert(10, "XYZ", "EUR"); err == nil {
		t.Fatal("expected error for unknown currency")
	}
}
