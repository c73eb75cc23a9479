// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides liftlog://plans, liftlog://sessions/recent and liftlog://profile.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// liftlog://plans - all plans with exercises
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://plans",
		Name:        "Workout Plans",
		Description: "All workout plans with their ordered exercises",
		MIMEType:    "application/json",
	}, s.handlePlansResource)

	// liftlog://sessions/recent - last 10 sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://sessions/recent",
		Name:        "Recent Sessions",
		Description: "The 10 most recent performed sessions",
		MIMEType:    "application/json",
	}, s.handleRecentSessionsResource)

	// liftlog://profile - user profile
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://profile",
		Name:        "User Profile",
		Description: "The user profile and weight unit preference",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// Resource handlers

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plans, err := s.repo.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return jsonResource("liftlog://plans", plans)
}

func (s *Server) handleRecentSessionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	months, err := s.repo.ListSessionsByMonth()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var recent []interface{}
	for _, m := range months {
		for _, session := range m.Sessions {
			if len(recent) >= 10 {
				break
			}
			recent = append(recent, session)
		}
	}

	result := map[string]interface{}{
		"sessions": recent,
		"count":    len(recent),
	}
	return jsonResource("liftlog://sessions/recent", result)
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.repo.Profile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return jsonResource("liftlog://profile", profile)
}

// jsonResource renders a value as an indented JSON resource result.
func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
