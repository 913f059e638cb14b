package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// predictTemplate is the standalone inference script shipped in the bundle.
// It is keyed on the backbone architecture and the class count so the user
// can run the model with nothing but the bundle and torchvision installed.
var predictTemplate = template.Must(template.New("predict").Parse(`#!/usr/bin/env python3
"""Standalone inference for the bundled model.

Usage: python predict.py <image-path>
"""
import json
import sys

import torch
from PIL import Image
from torchvision import models, transforms

ARCHITECTURE = "{{.Architecture}}"
NUM_CLASSES = {{.NumClasses}}


def build_model():
    model = getattr(models, ARCHITECTURE)()
    if ARCHITECTURE.startswith("resnet"):
        model.fc = torch.nn.Linear(model.fc.in_features, NUM_CLASSES)
    elif ARCHITECTURE == "mobilenet_v2":
        model.classifier[1] = torch.nn.Linear(model.classifier[1].in_features, NUM_CLASSES)
    elif ARCHITECTURE == "efficientnet_b0":
        model.classifier[1] = torch.nn.Linear(model.classifier[1].in_features, NUM_CLASSES)
    else:
        raise ValueError(f"unsupported architecture: {ARCHITECTURE}")
    state = torch.load("model.pth", map_location="cpu")
    model.load_state_dict(state)
    model.eval()
    return model


def main():
    if len(sys.argv) != 2:
        print(__doc__)
        sys.exit(1)

    with open("labels.json") as f:
        labels = json.load(f)

    preprocess = transforms.Compose([
        transforms.Resize(256),
        transforms.CenterCrop(224),
        transforms.ToTensor(),
        transforms.Normalize(mean=[0.485, 0.456, 0.406], std=[0.229, 0.224, 0.225]),
    ])

    image = Image.open(sys.argv[1]).convert("RGB")
    batch = preprocess(image).unsqueeze(0)

    model = build_model()
    with torch.no_grad():
        probs = torch.nn.functional.softmax(model(batch)[0], dim=0)

    top = torch.topk(probs, k=min(3, len(labels)))
    for prob, idx in zip(top.values, top.indices):
        print(f"{labels[idx]}: {prob.item():.4f}")


if __name__ == "__main__":
    main()
`))

// bundleSpec holds everything needed to assemble a bundle directory.
type bundleSpec struct {
	ProjectName  string
	Architecture string
	ClassLabels  []string
	Accuracy     float64
	WeightsPath  string
}

// assembleBundle builds the bundle directory {model.pth, predict.py,
// labels.json, README.txt} under dir.
func assembleBundle(dir string, spec bundleSpec) error {
	if err := os.Rename(spec.WeightsPath, filepath.Join(dir, "model.pth")); err != nil {
		return flowerr.Wrap(flowerr.Permanent, "bundle", err)
	}

	var predictScript strings.Builder
	err := predictTemplate.Execute(&predictScript, map[string]any{
		"Architecture": spec.Architecture,
		"NumClasses":   len(spec.ClassLabels),
	})
	if err != nil {
		return flowerr.Wrap(flowerr.Permanent, "bundle", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "predict.py"), []byte(predictScript.String()), 0o755); err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "bundle", err)
	}

	labels, err := json.MarshalIndent(spec.ClassLabels, "", "  ")
	if err != nil {
		return flowerr.Wrap(flowerr.Permanent, "bundle", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "labels.json"), labels, 0o644); err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "bundle", err)
	}

	readme := fmt.Sprintf(`%s
%s

Trained %s image classifier (%d classes).
Test accuracy: %.2f%%

Contents:
  model.pth    - trained weights (PyTorch state dict)
  predict.py   - standalone inference script
  labels.json  - ordered class labels

To classify an image:
  pip install torch torchvision pillow
  python predict.py path/to/image.jpg

Generated %s
`,
		spec.ProjectName,
		strings.Repeat("=", len(spec.ProjectName)),
		spec.Architecture, len(spec.ClassLabels),
		spec.Accuracy*100,
		time.Now().UTC().Format("2006-01-02"))
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte(readme), 0o644); err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "bundle", err)
	}

	return nil
}
