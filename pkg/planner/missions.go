package planner

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/costmodel"
	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// Mission is a named mission record.
//
// Cost holds the cost fields exactly as they appeared in the source
// document, so a field written as 0 stays 0 and only absent fields take
// the cost model's defaults. A nil Cost prices Params as a complete record.
type Mission struct {
	Name   string                       `yaml:"name" json:"name"`
	Params interfaces.MissionParameters `yaml:",inline" json:"mission"`
	Cost   *costmodel.Input             `yaml:"-" json:"-"`
}

// CostInput returns the cost model input for m.
func (m Mission) CostInput() costmodel.Input {
	if m.Cost != nil {
		return *m.Cost
	}
	return costmodel.InputFrom(&m.Params)
}

// LoadMission reads one mission record from a YAML or JSON file.
func LoadMission(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("planner: reading mission: %w", err)
	}
	m, err := ParseMission(data)
	if err != nil {
		return nil, fmt.Errorf("planner: parsing mission %s: %w", path, err)
	}
	return m, nil
}

// ParseMission decodes a single mission record, YAML or JSON.
func ParseMission(data []byte) (*Mission, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return &Mission{Cost: &costmodel.Input{}}, nil
	}
	return decodeMission(doc.Content[0])
}

func decodeMission(node *yaml.Node) (*Mission, error) {
	var m Mission
	if err := node.Decode(&m); err != nil {
		return nil, err
	}
	var in costmodel.Input
	if err := node.Decode(&in); err != nil {
		return nil, err
	}
	m.Cost = &in
	return &m, nil
}

// LoadMissions reads a batch file. The file is either a top-level list of
// missions or a mapping with a "missions" list. Unnamed missions are named
// by position.
func LoadMissions(path string) ([]Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("planner: reading missions: %w", err)
	}
	missions, err := ParseMissions(data)
	if err != nil {
		return nil, fmt.Errorf("planner: parsing missions %s: %w", path, err)
	}
	return missions, nil
}

// ParseMissions decodes batch file contents. YAML is a superset of JSON so
// both encodings are accepted.
func ParseMissions(data []byte) ([]Mission, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var list *yaml.Node
	switch {
	case len(doc.Content) == 0:
		// empty document
	case doc.Content[0].Kind == yaml.SequenceNode:
		list = doc.Content[0]
	case doc.Content[0].Kind == yaml.MappingNode:
		root := doc.Content[0]
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "missions" {
				list = root.Content[i+1]
			}
		}
	default:
		return nil, fmt.Errorf("expected a list of missions or a missions mapping")
	}
	if list != nil && list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("missions must be a list")
	}

	var missions []Mission
	if list != nil {
		for _, item := range list.Content {
			m, err := decodeMission(item)
			if err != nil {
				return nil, err
			}
			missions = append(missions, *m)
		}
	}

	if len(missions) == 0 {
		return nil, fmt.Errorf("no missions found")
	}
	for i := range missions {
		if missions[i].Name == "" {
			missions[i].Name = "mission-" + strconv.Itoa(i+1)
		}
	}
	return missions, nil
}
