package bootstrap

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// mcpServerName is the key textinfo registers under in .mcp.json.
const mcpServerName = "textinfo"

// mcpConfig represents the structure of a .mcp.json file.
type mcpConfig struct {
	MCPServers map[string]json.RawMessage `json:"mcpServers"`
}

// mcpServerEntry is the textinfo MCP server configuration.
type mcpServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// GenerateMCPConfig adds a textinfo entry to .mcp.json. It only acts when
// the project has a .claude/ agent configuration directory.
func GenerateMCPConfig(repoPath string) (Action, error) {
	hasAgentDir, err := fileExists(filepath.Join(repoPath, ".claude"))
	if err != nil {
		return Action{}, err
	}
	if !hasAgentDir {
		return Action{
			File:        ".mcp.json",
			Operation:   OpSkipped,
			Description: "no .claude/ directory found",
		}, nil
	}

	mcpPath := filepath.Join(repoPath, ".mcp.json")
	exists, err := fileExists(mcpPath)
	if err != nil {
		return Action{}, err
	}

	cfg := mcpConfig{}
	if exists {
		existing, err := FS.ReadFile(mcpPath)
		if err != nil {
			return Action{}, fmt.Errorf("reading .mcp.json: %w", err)
		}
		if err := json.Unmarshal(existing, &cfg); err != nil {
			return Action{}, fmt.Errorf("parsing .mcp.json: %w", err)
		}
		if _, ok := cfg.MCPServers[mcpServerName]; ok {
			return Action{
				File:        ".mcp.json",
				Operation:   OpSkipped,
				Description: "textinfo MCP server already configured",
			}, nil
		}
	}
	if cfg.MCPServers == nil {
		cfg.MCPServers = map[string]json.RawMessage{}
	}

	entry, err := json.Marshal(mcpServerEntry{Command: "textinfo", Args: []string{"mcp", "serve"}})
	if err != nil {
		return Action{}, fmt.Errorf("marshaling MCP server entry: %w", err)
	}
	cfg.MCPServers[mcpServerName] = entry

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return Action{}, fmt.Errorf("marshaling .mcp.json: %w", err)
	}
	data = append(data, '\n')
	if err := FS.WriteFile(mcpPath, data, 0o644); err != nil { //nolint:gosec // shared project file
		return Action{}, fmt.Errorf("writing .mcp.json: %w", err)
	}

	if exists {
		return Action{File: ".mcp.json", Operation: OpUpdated, Description: "added textinfo MCP server entry"}, nil
	}
	return Action{File: ".mcp.json", Operation: OpCreated, Description: "created with textinfo MCP server entry"}, nil
}
