// Package plan defines the project plan the planner extracts from a user
// utterance, with strict validation and defaulting of the LLM's JSON output.
package plan

import (
	"encoding/json"
	"strings"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// Plan is the validated output of the planner.
type Plan struct {
	Name             string   `json:"name"`
	TaskType         string   `json:"task_type"`
	Framework        string   `json:"framework"`
	DatasetSource    string   `json:"dataset_source"`
	SearchKeywords   []string `json:"search_keywords"`
	PreferredModel   string   `json:"preferred_model"`
	TargetMetric     string   `json:"target_metric"`
	TargetValue      float64  `json:"target_value"`
	MaxDatasetSizeGB float64  `json:"max_dataset_size_gb"`
}

// HardSizeCeilingGB caps max_dataset_size_gb regardless of what the plan or
// the utterance asks for.
const HardSizeCeilingGB = 50.0

var (
	validTaskTypes = map[string]bool{
		"image_classification": true,
		"object_detection":     true,
		"text_classification":  true,
	}
	validFrameworks = map[string]bool{
		"pytorch":    true,
		"tensorflow": true,
	}
	validSources = map[string]bool{
		"kaggle":      true,
		"huggingface": true,
	}
	validModels = map[string]bool{
		"resnet18":        true,
		"resnet34":        true,
		"resnet50":        true,
		"mobilenet_v2":    true,
		"efficientnet_b0": true,
	}
)

// Parse decodes raw JSON into a Plan, applies defaults, and validates every
// field. Unrecognized top-level fields are discarded; LLM output often
// carries extra keys and they are not worth burning the retry on.
func Parse(raw []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, flowerr.Wrap(flowerr.PlanInvalid, "parse_plan", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if len(p.Name) < 3 || len(p.Name) > 80 {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "name must be 3-80 characters, got %d", len(p.Name))
	}

	if p.TaskType == "" {
		p.TaskType = "image_classification"
	}
	if !validTaskTypes[p.TaskType] {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "unknown task_type %q", p.TaskType)
	}

	if p.Framework == "" {
		p.Framework = "pytorch"
	}
	if !validFrameworks[p.Framework] {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "unknown framework %q", p.Framework)
	}

	if p.DatasetSource == "" {
		p.DatasetSource = "kaggle"
	}
	if !validSources[p.DatasetSource] {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "unknown dataset_source %q", p.DatasetSource)
	}

	keywords := make([]string, 0, len(p.SearchKeywords))
	for _, kw := range p.SearchKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) < 1 || len(keywords) > 8 {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "search_keywords must have 1-8 entries, got %d", len(keywords))
	}
	p.SearchKeywords = keywords

	if p.PreferredModel == "" {
		p.PreferredModel = "resnet18"
	}
	if !validModels[p.PreferredModel] {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "unknown preferred_model %q", p.PreferredModel)
	}

	if p.TargetMetric == "" {
		p.TargetMetric = "accuracy"
	}
	if p.TargetMetric != "accuracy" {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "unsupported target_metric %q", p.TargetMetric)
	}

	if p.TargetValue == 0 {
		p.TargetValue = 0.9
	}
	if p.TargetValue < 0 || p.TargetValue > 1 {
		return flowerr.New(flowerr.PlanInvalid, "validate_plan", "target_value must be in [0,1], got %v", p.TargetValue)
	}

	if p.MaxDatasetSizeGB <= 0 {
		p.MaxDatasetSizeGB = HardSizeCeilingGB
	}
	if p.MaxDatasetSizeGB > HardSizeCeilingGB {
		p.MaxDatasetSizeGB = HardSizeCeilingGB
	}

	return nil
}

// StripFences removes a surrounding markdown code fence from an LLM reply,
// tolerating a language tag after the opening fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the language tag line, e.g. "json".
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isLanguageTag(first) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
