package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solixmon/internal/config"
)

func meterConfig(host, path, token string) *config.Config {
	return &config.Config{
		MeterHost:  host,
		MeterPath:  path,
		MeterToken: token,
	}
}

func hostOf(ts *httptest.Server) string {
	return strings.TrimPrefix(ts.URL, "http://")
}

func TestMeterFetch(t *testing.T) {
	var sawAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/energy" {
			t.Errorf("path = %q", r.URL.Path)
		}
		sawAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, energyBody(24))
	}))
	defer ts.Close()

	src := NewMeterSource(newClient(5*time.Second), meterConfig(hostOf(ts), "/api/v1/energy", "meter-tok"))

	reading, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if sawAuth != "Bearer meter-tok" {
		t.Errorf("Authorization header = %q", sawAuth)
	}
	if reading.DailyConsumption == nil || *reading.DailyConsumption != 3.14 {
		t.Errorf("daily consumption = %v", reading.DailyConsumption)
	}
}

func TestMeterFetchWithoutToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		fmt.Fprint(w, energyBody(24))
	}))
	defer ts.Close()

	src := NewMeterSource(newClient(time.Second), meterConfig(hostOf(ts), "/energy", ""))

	if _, err := src.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
}

func TestMeterFetchConfigMissing(t *testing.T) {
	transport := &countingTransport{}
	client := newClient(time.Second)
	client.SetTransport(transport)

	src := NewMeterSource(client, meterConfig("", "", ""))

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("err = %v, want ErrConfigMissing", err)
	}
	if transport.calls != 0 {
		t.Errorf("transport was called %d times, want 0", transport.calls)
	}
}

func TestMeterFetchStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	src := NewMeterSource(newClient(time.Second), meterConfig(hostOf(ts), "/energy", ""))

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("err = %v, want ErrRequestFailed", err)
	}
}

func TestMeterFetchParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "II counter=0042")
	}))
	defer ts.Close()

	src := NewMeterSource(newClient(time.Second), meterConfig(hostOf(ts), "/energy", ""))

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrParseFailed) {
		t.Errorf("err = %v, want ErrParseFailed", err)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Mode: config.ModeCloud, HTTPTimeout: time.Second}
	src, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig(cloud) failed: %v", err)
	}
	if src.Name() != "cloud" {
		t.Errorf("source name = %q, want cloud", src.Name())
	}

	cfg.Mode = config.ModeMeter
	src, err = FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig(meter) failed: %v", err)
	}
	if src.Name() != "meter" {
		t.Errorf("source name = %q, want meter", src.Name())
	}

	cfg.Mode = "serial"
	if _, err := FromConfig(cfg); err == nil {
		t.Error("FromConfig accepted unsupported mode")
	}
}
