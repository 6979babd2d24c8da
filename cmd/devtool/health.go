package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/PetBot_Go/internal/config"
)

const slowResponse = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe /healthz and /readyz of a running server (optional base URL)"
}

func (c *HealthCheckCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	base := fmt.Sprintf("http://localhost:%d", cfg.Port)
	if len(args) > 0 {
		base = args[0]
	}
	PrintHeader("Health Check (" + base + ")")

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := probe(ctx, client, base+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		elapsed := time.Since(start)
		if elapsed > slowResponse {
			PrintWarning("%s slow response (%v)", path, elapsed)
		} else {
			PrintSuccess("%s ok (%v)", path, elapsed)
		}
	}
	return nil
}

func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
