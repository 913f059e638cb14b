// Package trainer wraps the gRPC connection to the trainer runtime sidecar,
// the Python process that owns the ML frameworks. The Go agents stage data
// in the object store and drive training, evaluation, and prediction through
// this client; the sidecar reads and writes the object store directly.
package trainer

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/modelfoundry/foundry/proto"
	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// TrainSpec describes one training job.
type TrainSpec struct {
	ProjectID    string
	DatasetURI   string
	Framework    string
	TaskType     string
	Epochs       int
	BatchSize    int
	LearningRate float64
	OutputURI    string
	Architecture string
}

// EpochProgress is one per-epoch update from the runtime.
type EpochProgress struct {
	Epoch       int
	TotalEpochs int
	Loss        float64
	ValAccuracy float64
}

// TrainResult is the final outcome of a training job.
type TrainResult struct {
	ModelURI        string
	FinalLoss       float64
	TrainingSeconds int64
	ClassLabels     []string
}

// PerClassMetrics is one row of the evaluation report.
type PerClassMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int64   `json:"support"`
}

// EvalResult is the outcome of scoring a model on a held-out split.
type EvalResult struct {
	Accuracy    float64
	PerClass    []PerClassMetrics
	SampleCount int64
}

// Prediction is one ranked label from Predict.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Client wraps the gRPC connection to the trainer runtime.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TrainerServiceClient
}

// NewClient connects to the trainer runtime.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to trainer service: %w", err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewTrainerServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Train runs a training job, invoking onEpoch for each progress update, and
// returns the final result. Blocks until the stream completes or ctx is
// cancelled.
func (c *Client) Train(ctx context.Context, spec TrainSpec, onEpoch func(EpochProgress)) (*TrainResult, error) {
	stream, err := c.client.Train(ctx, &pb.TrainRequest{
		ProjectId:    spec.ProjectID,
		DatasetUri:   spec.DatasetURI,
		Framework:    spec.Framework,
		TaskType:     spec.TaskType,
		Epochs:       int32(spec.Epochs),
		BatchSize:    int32(spec.BatchSize),
		LearningRate: spec.LearningRate,
		OutputUri:    spec.OutputURI,
		Architecture: spec.Architecture,
	})
	if err != nil {
		return nil, flowerr.Wrap(flowerr.Dependency, "train", err)
	}

	for {
		progress, err := stream.Recv()
		if err == io.EOF {
			return nil, flowerr.New(flowerr.Dependency, "train", "training stream ended without a final result")
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, flowerr.Wrap(flowerr.Timeout, "train", ctx.Err())
			}
			return nil, flowerr.Wrap(flowerr.Dependency, "train", err)
		}

		if progress.Done {
			return &TrainResult{
				ModelURI:        progress.ModelUri,
				FinalLoss:       progress.FinalLoss,
				TrainingSeconds: progress.TrainingSeconds,
				ClassLabels:     progress.ClassLabels,
			}, nil
		}
		if onEpoch != nil {
			onEpoch(EpochProgress{
				Epoch:       int(progress.Epoch),
				TotalEpochs: int(progress.TotalEpochs),
				Loss:        progress.Loss,
				ValAccuracy: progress.ValAccuracy,
			})
		}
	}
}

// Evaluate scores a model against a dataset split.
func (c *Client) Evaluate(ctx context.Context, projectID, modelURI, datasetURI, split string, batchSize int) (*EvalResult, error) {
	resp, err := c.client.Evaluate(ctx, &pb.EvaluateRequest{
		ProjectId:  projectID,
		ModelUri:   modelURI,
		DatasetUri: datasetURI,
		Split:      split,
		BatchSize:  int32(batchSize),
	})
	if err != nil {
		return nil, flowerr.Wrap(flowerr.Dependency, "evaluate", err)
	}

	result := &EvalResult{
		Accuracy:    resp.Accuracy,
		SampleCount: resp.SampleCount,
	}
	for _, pc := range resp.PerClass {
		result.PerClass = append(result.PerClass, PerClassMetrics{
			Label:     pc.Label,
			Precision: pc.Precision,
			Recall:    pc.Recall,
			F1:        pc.F1,
			Support:   pc.Support,
		})
	}
	return result, nil
}

// Predict classifies a single image with the given model.
func (c *Client) Predict(ctx context.Context, modelURI string, image []byte, topK int) ([]Prediction, error) {
	resp, err := c.client.Predict(ctx, &pb.PredictRequest{
		ModelUri: modelURI,
		Image:    image,
		TopK:     int32(topK),
	})
	if err != nil {
		return nil, flowerr.Wrap(flowerr.Dependency, "predict", err)
	}

	out := make([]Prediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		out[i] = Prediction{Label: p.Label, Confidence: p.Confidence}
	}
	return out, nil
}
