package main

import (
	"linkedin-scraper/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFromArgs(t *testing.T) {
	cfg := &config.Config{Title: "cfg title", Location: "cfg location", OutputName: "jobs"}

	q, err := queryFromArgs([]string{"golang", "Berlin", "berlin_go"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "golang", q.Title)
	assert.Equal(t, "Berlin", q.Location)
	assert.Equal(t, "berlin_go", q.OutputName)

	q, err = queryFromArgs([]string{"rust"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "rust", q.Title)
	assert.Equal(t, "cfg location", q.Location)
	assert.Equal(t, "jobs", q.OutputName)

	_, err = queryFromArgs([]string{"a", "b", "c", "d"}, cfg)
	assert.Error(t, err)

	q, err = queryFromArgs([]string{"", ""}, &config.Config{OutputName: "all"})
	require.NoError(t, err, "empty title and location are valid searches")
	assert.Empty(t, q.Title)
	assert.Empty(t, q.Location)
	assert.Equal(t, "all", q.OutputName)
}

func TestNewEngine_HTTP(t *testing.T) {
	cfg := &config.Config{Engine: config.EngineHTTP, NavigationTimeoutMs: 1000}

	engine, onFailure, err := newEngine(cfg)
	require.NoError(t, err)
	defer engine.Close()
	assert.NotNil(t, engine)
	assert.Nil(t, onFailure)
}
