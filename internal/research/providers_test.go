package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const duckDuckGoFixture = `<!DOCTYPE html><html><body>
<div class="result">
  <a class="result__a" href="https://example.com/a">Electric vehicle sales surge</a>
  <a class="result__snippet" href="https://example.com/a">Global EV sales climbed 30 percent year over year, led by strong demand in Europe.</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/b">Battery prices keep falling</a>
  <a class="result__snippet" href="https://example.com/b">Lithium-ion pack prices dropped below the hundred dollar threshold for the first time.</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/c">Short</a>
  <a class="result__snippet" href="https://example.com/c">tiny</a>
</div>
</body></html>`

func TestDuckDuckGoProvider_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "electric vehicles", r.URL.Query().Get("q"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		_, _ = w.Write([]byte(duckDuckGoFixture))
	}))
	defer srv.Close()

	p := NewDuckDuckGoProvider(WithDuckDuckGoBaseURL(srv.URL))

	snippets, err := p.Search(context.Background(), "electric vehicles", "en")
	require.NoError(t, err)
	require.Len(t, snippets, 2, "sub-threshold snippets should be dropped")

	assert.Equal(t, "Electric vehicle sales surge", snippets[0].Title)
	assert.Contains(t, snippets[0].Body, "climbed 30 percent")
	assert.Equal(t, "Battery prices keep falling", snippets[1].Title)
}

func TestDuckDuckGoProvider_Search_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewDuckDuckGoProvider(WithDuckDuckGoBaseURL(srv.URL))
	_, err := p.Search(context.Background(), "anything", "en")
	require.Error(t, err)
}

func TestGoogleCSEProvider_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-123", r.URL.Query().Get("key"))
		assert.Equal(t, "cx-456", r.URL.Query().Get("cx"))
		assert.Equal(t, "lang_it", r.URL.Query().Get("lr"))
		_, _ = w.Write([]byte(`{"items":[
			{"title":"Titolo uno","snippet":"Primo frammento di testo."},
			{"title":"Titolo due","snippet":"Secondo frammento di testo."},
			{"title":"Vuoto","snippet":""}
		]}`))
	}))
	defer srv.Close()

	p := NewGoogleCSEProvider("key-123", "cx-456", WithGoogleBaseURL(srv.URL))

	snippets, err := p.Search(context.Background(), "intelligenza artificiale", "it")
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "Titolo uno", snippets[0].Title)
}

const googleNewsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Search results</title>
<item>
  <title>Quantum breakthrough announced</title>
  <description>&lt;a href="x"&gt;Researchers demonstrate error-corrected qubits at scale.&lt;/a&gt;</description>
</item>
<item>
  <title>Second story headline</title>
  <description></description>
</item>
</channel></rss>`

func TestGoogleNewsProvider_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "quantum computing", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(googleNewsFixture))
	}))
	defer srv.Close()

	p := NewGoogleNewsProvider(WithGoogleNewsBaseURL(srv.URL))

	snippets, err := p.Search(context.Background(), "quantum computing", "en")
	require.NoError(t, err)
	require.Len(t, snippets, 2)

	assert.Equal(t, "Quantum breakthrough announced", snippets[0].Title)
	assert.Equal(t, "Researchers demonstrate error-corrected qubits at scale.", snippets[0].Body)
	assert.Equal(t, "Second story headline", snippets[1].Body, "empty description falls back to title")
}
