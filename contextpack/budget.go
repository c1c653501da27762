package contextpack

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultReserveTokens is the margin withheld from every budget for the
// prompt scaffolding and the model's response.
const DefaultReserveTokens = 2000

// defaultAgentBudget applies to unrecognized agent roles.
const defaultAgentBudget = 60000

// agentBudgets maps agent roles to their context token ceilings. Roles that
// read code broadly get more room than roles that work from summaries.
var agentBudgets = map[string]int{
	"architect":     120000,
	"developer":     100000,
	"reviewer":      80000,
	"tester":        80000,
	"documentation": 50000,
}

// AgentBudget returns the context token ceiling for an agent role, falling
// back to a conservative default for unknown roles.
func AgentBudget(agentType string) int {
	if budget, ok := agentBudgets[agentType]; ok {
		return budget
	}
	return defaultAgentBudget
}

// Config holds per-project packer configuration from .devstudio.yaml.
type Config struct {
	Budgets       map[string]int `yaml:"budgets"`
	ReserveTokens int            `yaml:"reserve_tokens"`
	IgnoreDirs    []string       `yaml:"ignore_dirs"`
	MaxFiles      int            `yaml:"max_files"`
}

// LoadConfig loads .devstudio.yaml from a project directory.
// Returns a default config if the file doesn't exist.
func LoadConfig(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, ".devstudio.yaml")

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{ReserveTokens: DefaultReserveTokens}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.ReserveTokens == 0 {
		config.ReserveTokens = DefaultReserveTokens
	}

	return &config, nil
}

// Budget returns the ceiling for an agent role, honoring per-project
// overrides before the built-in table.
func (c *Config) Budget(agentType string) int {
	if c != nil {
		if budget, ok := c.Budgets[agentType]; ok {
			return budget
		}
	}
	return AgentBudget(agentType)
}
