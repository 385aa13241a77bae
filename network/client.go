// Package network provides the HTTP clients used to reach the upstream API.
package network

import (
	"net/http"
	"time"

	"github.com/abouramd/live-stream/key"
	"github.com/spf13/viper"
)

// Client is the shared plain client.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// NewClient builds a client from the api.timeout and network.tls_fingerprint settings.
func NewClient() *http.Client {
	timeout := time.Duration(viper.GetInt(key.APITimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	var transport http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		transport = NewFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
