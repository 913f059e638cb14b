package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

func TestParse_AppliesDefaults(t *testing.T) {
	p, err := Parse([]byte(`{"name": "Cats vs Dogs", "search_keywords": ["Cats", " dogs "]}`))
	require.NoError(t, err)

	assert.Equal(t, "Cats vs Dogs", p.Name)
	assert.Equal(t, "image_classification", p.TaskType)
	assert.Equal(t, "pytorch", p.Framework)
	assert.Equal(t, "kaggle", p.DatasetSource)
	assert.Equal(t, []string{"cats", "dogs"}, p.SearchKeywords)
	assert.Equal(t, "resnet18", p.PreferredModel)
	assert.Equal(t, "accuracy", p.TargetMetric)
	assert.Equal(t, 0.9, p.TargetValue)
	assert.Equal(t, HardSizeCeilingGB, p.MaxDatasetSizeGB)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `flowers are nice`},
		{"name too short", `{"name": "ab", "search_keywords": ["flowers"]}`},
		{"no keywords", `{"name": "Flowers", "search_keywords": []}`},
		{"blank keywords only", `{"name": "Flowers", "search_keywords": ["  ", ""]}`},
		{"too many keywords", `{"name": "Flowers", "search_keywords": ["a","b","c","d","e","f","g","h","i"]}`},
		{"unknown task type", `{"name": "Flowers", "task_type": "regression", "search_keywords": ["flowers"]}`},
		{"unknown framework", `{"name": "Flowers", "framework": "jax", "search_keywords": ["flowers"]}`},
		{"unknown source", `{"name": "Flowers", "dataset_source": "imagenet", "search_keywords": ["flowers"]}`},
		{"unknown model", `{"name": "Flowers", "preferred_model": "vit_b16", "search_keywords": ["flowers"]}`},
		{"unsupported metric", `{"name": "Flowers", "target_metric": "f1", "search_keywords": ["flowers"]}`},
		{"target value out of range", `{"name": "Flowers", "target_value": 1.2, "search_keywords": ["flowers"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.Equal(t, flowerr.PlanInvalid, flowerr.KindOf(err))
		})
	}
}

func TestParse_DiscardsUnknownFields(t *testing.T) {
	p, err := Parse([]byte(`{"name": "Flowers", "search_keywords": ["flowers"], "confidence": 0.99, "gpu_count": 8}`))
	require.NoError(t, err)
	assert.Equal(t, "Flowers", p.Name)
	assert.Equal(t, "resnet18", p.PreferredModel)
}

func TestParse_ClampsSizeCeiling(t *testing.T) {
	p, err := Parse([]byte(`{"name": "Big Data", "search_keywords": ["satellite"], "max_dataset_size_gb": 500}`))
	require.NoError(t, err)
	assert.Equal(t, HardSizeCeilingGB, p.MaxDatasetSizeGB)
}

func TestParseSizeLimit(t *testing.T) {
	tests := []struct {
		utterance string
		wantGB    float64
		wantOK    bool
	}{
		{"train on flowers, under 2 GB please", 2, true},
		{"keep it below 1.5gb", 1.5, true},
		{"less than 10 gigabytes", 10, true},
		{"max 500 MB", 0.5, true},
		{"maximum 800 megabytes", 0.8, true},
		{"not more than 3 gigs", 3, true},
		{"up to 250 megs", 0.25, true},
		{"at most 4 GB of data", 4, true},
		{"classify dog breeds", 0, false},
		{"I have 2 GB of RAM", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			gb, ok := ParseSizeLimit(tt.utterance)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantGB, gb, 1e-9)
			}
		})
	}
}

func TestApplySizeLimit(t *testing.T) {
	p := &Plan{MaxDatasetSizeGB: 50}
	p.ApplySizeLimit("flowers dataset, under 500 MB")
	assert.InDelta(t, 0.5, p.MaxDatasetSizeGB, 1e-9)

	// Utterance always wins over the plan value, but never over the ceiling.
	p = &Plan{MaxDatasetSizeGB: 1}
	p.ApplySizeLimit("up to 999 GB")
	assert.Equal(t, HardSizeCeilingGB, p.MaxDatasetSizeGB)

	// No stated limit leaves the plan untouched.
	p = &Plan{MaxDatasetSizeGB: 7}
	p.ApplySizeLimit("a model that recognizes birds")
	assert.Equal(t, 7.0, p.MaxDatasetSizeGB)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"name": "x"}`, `{"name": "x"}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cats vs Dogs", "cats_vs_dogs"},
		{"  Flower-Power!! 2024 ", "flower_power_2024"},
		{"already_fine", "already_fine"},
		{"///", "project"},
		{"", "project"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "input %q", tt.in)
	}

	long := Slug("this is a very long project name that keeps going and going")
	assert.LessOrEqual(t, len(long), 40)
	assert.NotEqual(t, byte('_'), long[len(long)-1])
}
