package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"redbus-scraper/models"
)

type routesFile struct {
	Routes []models.Route `yaml:"routes"`
}

// LoadRoutesFile reads an ordered route list from a YAML file of the form
//
//	routes:
//	  - source: bangalore
//	    destination: chennai
func LoadRoutesFile(path string) ([]models.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read routes file %q: %w", path, err)
	}
	return ParseRoutes(data)
}

// ParseRoutes decodes YAML route definitions, lower-casing the city slugs.
func ParseRoutes(data []byte) ([]models.Route, error) {
	var f routesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse routes: %w", err)
	}
	if len(f.Routes) == 0 {
		return nil, fmt.Errorf("config: routes file defines no routes")
	}

	routes := make([]models.Route, 0, len(f.Routes))
	for i, r := range f.Routes {
		src := strings.ToLower(strings.TrimSpace(r.Source))
		dst := strings.ToLower(strings.TrimSpace(r.Destination))
		if src == "" || dst == "" {
			return nil, fmt.Errorf("config: route %d needs both source and destination", i+1)
		}
		routes = append(routes, models.Route{Source: src, Destination: dst})
	}
	return routes, nil
}

// ParseRouteList parses the CLI form "bangalore:chennai,hyderabad:bangalore".
func ParseRouteList(s string) ([]models.Route, error) {
	var routes []models.Route
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		src, dst, ok := strings.Cut(pair, ":")
		src = strings.ToLower(strings.TrimSpace(src))
		dst = strings.ToLower(strings.TrimSpace(dst))
		if !ok || src == "" || dst == "" {
			return nil, fmt.Errorf("config: invalid route %q, want source:destination", pair)
		}
		routes = append(routes, models.Route{Source: src, Destination: dst})
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("config: no routes in %q", s)
	}
	return routes, nil
}
