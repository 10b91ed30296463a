package web

import (
	"cfb-pickem/api/api"
	"cfb-pickem/api/feed"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
	Feed *feed.Client
}

// Server is the HTTP server that handles pick'em requests
type Server struct {
	api  *api.API
	feed *feed.Client
}

type submitPicksRequest struct {
	User  string            `json:"user"`
	Picks map[string]string `json:"picks"`
}

type submitBracketRequest struct {
	User        string            `json:"user"`
	Predictions map[string]string `json:"predictions"`
}

type syncRequest struct {
	Week int `json:"week"`
}

type settingsRequest struct {
	Week            int      `json:"week"`
	FeaturedGameIDs []string `json:"featuredGameIds"`
}

type seedPlayoffRequest struct {
	Teams []seedTeam `json:"teams"`
}

type seedTeam struct {
	Seed         int    `json:"seed"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
}

type spreadOverrideRequest struct {
	GameID string `json:"gameId"`
	Spread string `json:"spread"`
}

type errorResponse struct {
	Error string `json:"error"`
}
