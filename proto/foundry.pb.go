// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: foundry.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ChatMessage_Role int32

const (
	ChatMessage_ROLE_UNSPECIFIED ChatMessage_Role = 0
	ChatMessage_ROLE_SYSTEM      ChatMessage_Role = 1
	ChatMessage_ROLE_USER        ChatMessage_Role = 2
	ChatMessage_ROLE_ASSISTANT   ChatMessage_Role = 3
)

// Enum value maps for ChatMessage_Role.
var (
	ChatMessage_Role_name = map[int32]string{
		0: "ROLE_UNSPECIFIED",
		1: "ROLE_SYSTEM",
		2: "ROLE_USER",
		3: "ROLE_ASSISTANT",
	}
	ChatMessage_Role_value = map[string]int32{
		"ROLE_UNSPECIFIED": 0,
		"ROLE_SYSTEM":      1,
		"ROLE_USER":        2,
		"ROLE_ASSISTANT":   3,
	}
)

func (x ChatMessage_Role) Enum() *ChatMessage_Role {
	p := new(ChatMessage_Role)
	*p = x
	return p
}

func (x ChatMessage_Role) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ChatMessage_Role) Descriptor() protoreflect.EnumDescriptor {
	return file_foundry_proto_enumTypes[0].Descriptor()
}

func (ChatMessage_Role) Type() protoreflect.EnumType {
	return &file_foundry_proto_enumTypes[0]
}

func (x ChatMessage_Role) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ChatMessage_Role.Descriptor instead.
func (ChatMessage_Role) EnumDescriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{0, 0}
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          ChatMessage_Role       `protobuf:"varint,1,opt,name=role,proto3,enum=foundry.ChatMessage_Role" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_foundry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{0}
}

func (x *ChatMessage) GetRole() ChatMessage_Role {
	if x != nil {
		return x.Role
	}
	return ChatMessage_ROLE_UNSPECIFIED
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type CompletionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*ChatMessage         `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	Temperature   *float32               `protobuf:"fixed32,3,opt,name=temperature,proto3,oneof" json:"temperature,omitempty"`
	MaxTokens     *int32                 `protobuf:"varint,4,opt,name=max_tokens,json=maxTokens,proto3,oneof" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletionRequest) Reset() {
	*x = CompletionRequest{}
	mi := &file_foundry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionRequest) ProtoMessage() {}

func (x *CompletionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionRequest.ProtoReflect.Descriptor instead.
func (*CompletionRequest) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{1}
}

func (x *CompletionRequest) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *CompletionRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *CompletionRequest) GetTemperature() float32 {
	if x != nil && x.Temperature != nil {
		return *x.Temperature
	}
	return 0
}

func (x *CompletionRequest) GetMaxTokens() int32 {
	if x != nil && x.MaxTokens != nil {
		return *x.MaxTokens
	}
	return 0
}

type CompletionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletionResponse) Reset() {
	*x = CompletionResponse{}
	mi := &file_foundry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletionResponse) ProtoMessage() {}

func (x *CompletionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletionResponse.ProtoReflect.Descriptor instead.
func (*CompletionResponse) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{2}
}

func (x *CompletionResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *CompletionResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type TrainRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	ProjectId    string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	DatasetUri   string                 `protobuf:"bytes,2,opt,name=dataset_uri,json=datasetUri,proto3" json:"dataset_uri,omitempty"`
	Framework    string                 `protobuf:"bytes,3,opt,name=framework,proto3" json:"framework,omitempty"`
	TaskType     string                 `protobuf:"bytes,4,opt,name=task_type,json=taskType,proto3" json:"task_type,omitempty"`
	Epochs       int32                  `protobuf:"varint,5,opt,name=epochs,proto3" json:"epochs,omitempty"`
	BatchSize    int32                  `protobuf:"varint,6,opt,name=batch_size,json=batchSize,proto3" json:"batch_size,omitempty"`
	LearningRate float64                `protobuf:"fixed64,7,opt,name=learning_rate,json=learningRate,proto3" json:"learning_rate,omitempty"`
	// Destination object URI for the weights artifact.
	OutputUri string `protobuf:"bytes,8,opt,name=output_uri,json=outputUri,proto3" json:"output_uri,omitempty"`
	// Backbone architecture, e.g. resnet18.
	Architecture  string `protobuf:"bytes,9,opt,name=architecture,proto3" json:"architecture,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrainRequest) Reset() {
	*x = TrainRequest{}
	mi := &file_foundry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainRequest) ProtoMessage() {}

func (x *TrainRequest) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainRequest.ProtoReflect.Descriptor instead.
func (*TrainRequest) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{3}
}

func (x *TrainRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *TrainRequest) GetDatasetUri() string {
	if x != nil {
		return x.DatasetUri
	}
	return ""
}

func (x *TrainRequest) GetFramework() string {
	if x != nil {
		return x.Framework
	}
	return ""
}

func (x *TrainRequest) GetTaskType() string {
	if x != nil {
		return x.TaskType
	}
	return ""
}

func (x *TrainRequest) GetEpochs() int32 {
	if x != nil {
		return x.Epochs
	}
	return 0
}

func (x *TrainRequest) GetBatchSize() int32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

func (x *TrainRequest) GetLearningRate() float64 {
	if x != nil {
		return x.LearningRate
	}
	return 0
}

func (x *TrainRequest) GetOutputUri() string {
	if x != nil {
		return x.OutputUri
	}
	return ""
}

func (x *TrainRequest) GetArchitecture() string {
	if x != nil {
		return x.Architecture
	}
	return ""
}

type TrainProgress struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Epoch       int32                  `protobuf:"varint,1,opt,name=epoch,proto3" json:"epoch,omitempty"`
	TotalEpochs int32                  `protobuf:"varint,2,opt,name=total_epochs,json=totalEpochs,proto3" json:"total_epochs,omitempty"`
	Loss        float64                `protobuf:"fixed64,3,opt,name=loss,proto3" json:"loss,omitempty"`
	ValAccuracy float64                `protobuf:"fixed64,4,opt,name=val_accuracy,json=valAccuracy,proto3" json:"val_accuracy,omitempty"`
	Done        bool                   `protobuf:"varint,5,opt,name=done,proto3" json:"done,omitempty"`
	// Set only on the final message.
	ModelUri        string   `protobuf:"bytes,6,opt,name=model_uri,json=modelUri,proto3" json:"model_uri,omitempty"`
	FinalLoss       float64  `protobuf:"fixed64,7,opt,name=final_loss,json=finalLoss,proto3" json:"final_loss,omitempty"`
	TrainingSeconds int64    `protobuf:"varint,8,opt,name=training_seconds,json=trainingSeconds,proto3" json:"training_seconds,omitempty"`
	ClassLabels     []string `protobuf:"bytes,9,rep,name=class_labels,json=classLabels,proto3" json:"class_labels,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *TrainProgress) Reset() {
	*x = TrainProgress{}
	mi := &file_foundry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainProgress) ProtoMessage() {}

func (x *TrainProgress) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainProgress.ProtoReflect.Descriptor instead.
func (*TrainProgress) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{4}
}

func (x *TrainProgress) GetEpoch() int32 {
	if x != nil {
		return x.Epoch
	}
	return 0
}

func (x *TrainProgress) GetTotalEpochs() int32 {
	if x != nil {
		return x.TotalEpochs
	}
	return 0
}

func (x *TrainProgress) GetLoss() float64 {
	if x != nil {
		return x.Loss
	}
	return 0
}

func (x *TrainProgress) GetValAccuracy() float64 {
	if x != nil {
		return x.ValAccuracy
	}
	return 0
}

func (x *TrainProgress) GetDone() bool {
	if x != nil {
		return x.Done
	}
	return false
}

func (x *TrainProgress) GetModelUri() string {
	if x != nil {
		return x.ModelUri
	}
	return ""
}

func (x *TrainProgress) GetFinalLoss() float64 {
	if x != nil {
		return x.FinalLoss
	}
	return 0
}

func (x *TrainProgress) GetTrainingSeconds() int64 {
	if x != nil {
		return x.TrainingSeconds
	}
	return 0
}

func (x *TrainProgress) GetClassLabels() []string {
	if x != nil {
		return x.ClassLabels
	}
	return nil
}

type EvaluateRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	ProjectId  string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ModelUri   string                 `protobuf:"bytes,2,opt,name=model_uri,json=modelUri,proto3" json:"model_uri,omitempty"`
	DatasetUri string                 `protobuf:"bytes,3,opt,name=dataset_uri,json=datasetUri,proto3" json:"dataset_uri,omitempty"`
	// Split directory to evaluate against, "test" or "val".
	Split         string `protobuf:"bytes,4,opt,name=split,proto3" json:"split,omitempty"`
	BatchSize     int32  `protobuf:"varint,5,opt,name=batch_size,json=batchSize,proto3" json:"batch_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluateRequest) Reset() {
	*x = EvaluateRequest{}
	mi := &file_foundry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateRequest) ProtoMessage() {}

func (x *EvaluateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateRequest.ProtoReflect.Descriptor instead.
func (*EvaluateRequest) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{5}
}

func (x *EvaluateRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *EvaluateRequest) GetModelUri() string {
	if x != nil {
		return x.ModelUri
	}
	return ""
}

func (x *EvaluateRequest) GetDatasetUri() string {
	if x != nil {
		return x.DatasetUri
	}
	return ""
}

func (x *EvaluateRequest) GetSplit() string {
	if x != nil {
		return x.Split
	}
	return ""
}

func (x *EvaluateRequest) GetBatchSize() int32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

type PerClassMetrics struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Precision     float64                `protobuf:"fixed64,2,opt,name=precision,proto3" json:"precision,omitempty"`
	Recall        float64                `protobuf:"fixed64,3,opt,name=recall,proto3" json:"recall,omitempty"`
	F1            float64                `protobuf:"fixed64,4,opt,name=f1,proto3" json:"f1,omitempty"`
	Support       int64                  `protobuf:"varint,5,opt,name=support,proto3" json:"support,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PerClassMetrics) Reset() {
	*x = PerClassMetrics{}
	mi := &file_foundry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PerClassMetrics) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PerClassMetrics) ProtoMessage() {}

func (x *PerClassMetrics) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PerClassMetrics.ProtoReflect.Descriptor instead.
func (*PerClassMetrics) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{6}
}

func (x *PerClassMetrics) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *PerClassMetrics) GetPrecision() float64 {
	if x != nil {
		return x.Precision
	}
	return 0
}

func (x *PerClassMetrics) GetRecall() float64 {
	if x != nil {
		return x.Recall
	}
	return 0
}

func (x *PerClassMetrics) GetF1() float64 {
	if x != nil {
		return x.F1
	}
	return 0
}

func (x *PerClassMetrics) GetSupport() int64 {
	if x != nil {
		return x.Support
	}
	return 0
}

type EvaluateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accuracy      float64                `protobuf:"fixed64,1,opt,name=accuracy,proto3" json:"accuracy,omitempty"`
	PerClass      []*PerClassMetrics     `protobuf:"bytes,2,rep,name=per_class,json=perClass,proto3" json:"per_class,omitempty"`
	SampleCount   int64                  `protobuf:"varint,3,opt,name=sample_count,json=sampleCount,proto3" json:"sample_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluateResponse) Reset() {
	*x = EvaluateResponse{}
	mi := &file_foundry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateResponse) ProtoMessage() {}

func (x *EvaluateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateResponse.ProtoReflect.Descriptor instead.
func (*EvaluateResponse) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{7}
}

func (x *EvaluateResponse) GetAccuracy() float64 {
	if x != nil {
		return x.Accuracy
	}
	return 0
}

func (x *EvaluateResponse) GetPerClass() []*PerClassMetrics {
	if x != nil {
		return x.PerClass
	}
	return nil
}

func (x *EvaluateResponse) GetSampleCount() int64 {
	if x != nil {
		return x.SampleCount
	}
	return 0
}

type PredictRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ModelUri      string                 `protobuf:"bytes,1,opt,name=model_uri,json=modelUri,proto3" json:"model_uri,omitempty"`
	Image         []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	TopK          int32                  `protobuf:"varint,3,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictRequest) Reset() {
	*x = PredictRequest{}
	mi := &file_foundry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictRequest) ProtoMessage() {}

func (x *PredictRequest) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictRequest.ProtoReflect.Descriptor instead.
func (*PredictRequest) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{8}
}

func (x *PredictRequest) GetModelUri() string {
	if x != nil {
		return x.ModelUri
	}
	return ""
}

func (x *PredictRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *PredictRequest) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

type Prediction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Prediction) Reset() {
	*x = Prediction{}
	mi := &file_foundry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Prediction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Prediction) ProtoMessage() {}

func (x *Prediction) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Prediction.ProtoReflect.Descriptor instead.
func (*Prediction) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{9}
}

func (x *Prediction) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Prediction) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type PredictResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Predictions   []*Prediction          `protobuf:"bytes,1,rep,name=predictions,proto3" json:"predictions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictResponse) Reset() {
	*x = PredictResponse{}
	mi := &file_foundry_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictResponse) ProtoMessage() {}

func (x *PredictResponse) ProtoReflect() protoreflect.Message {
	mi := &file_foundry_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictResponse.ProtoReflect.Descriptor instead.
func (*PredictResponse) Descriptor() ([]byte, []int) {
	return file_foundry_proto_rawDescGZIP(), []int{10}
}

func (x *PredictResponse) GetPredictions() []*Prediction {
	if x != nil {
		return x.Predictions
	}
	return nil
}

var File_foundry_proto protoreflect.FileDescriptor

const file_foundry_proto_rawDesc = "" +
	"\n" +
	"\rfoundry.proto\x12\afoundry\"\xa8\x01\n" +
	"\vChatMessage\x12-\n" +
	"\x04role\x18\x01 \x01(\x0e2\x19.foundry.ChatMessage.RoleR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"P\n" +
	"\x04Role\x12\x14\n" +
	"\x10ROLE_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vROLE_SYSTEM\x10\x01\x12\r\n" +
	"\tROLE_USER\x10\x02\x12\x12\n" +
	"\x0eROLE_ASSISTANT\x10\x03\"\xc5\x01\n" +
	"\x11CompletionRequest\x120\n" +
	"\bmessages\x18\x01 \x03(\v2\x14.foundry.ChatMessageR\bmessages\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\x12%\n" +
	"\vtemperature\x18\x03 \x01(\x02H\x00R\vtemperature\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_tokens\x18\x04 \x01(\x05H\x01R\tmaxTokens\x88\x01\x01B\x0e\n" +
	"\f_temperatureB\r\n" +
	"\v_max_tokens\"D\n" +
	"\x12CompletionResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\"\xa8\x02\n" +
	"\fTrainRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vdataset_uri\x18\x02 \x01(\tR\n" +
	"datasetUri\x12\x1c\n" +
	"\tframework\x18\x03 \x01(\tR\tframework\x12\x1b\n" +
	"\ttask_type\x18\x04 \x01(\tR\btaskType\x12\x16\n" +
	"\x06epochs\x18\x05 \x01(\x05R\x06epochs\x12\x1d\n" +
	"\n" +
	"batch_size\x18\x06 \x01(\x05R\tbatchSize\x12#\n" +
	"\rlearning_rate\x18\a \x01(\x01R\flearningRate\x12\x1d\n" +
	"\n" +
	"output_uri\x18\b \x01(\tR\toutputUri\x12\"\n" +
	"\farchitecture\x18\t \x01(\tR\farchitecture\"\x9d\x02\n" +
	"\rTrainProgress\x12\x14\n" +
	"\x05epoch\x18\x01 \x01(\x05R\x05epoch\x12!\n" +
	"\ftotal_epochs\x18\x02 \x01(\x05R\vtotalEpochs\x12\x12\n" +
	"\x04loss\x18\x03 \x01(\x01R\x04loss\x12!\n" +
	"\fval_accuracy\x18\x04 \x01(\x01R\vvalAccuracy\x12\x12\n" +
	"\x04done\x18\x05 \x01(\bR\x04done\x12\x1b\n" +
	"\tmodel_uri\x18\x06 \x01(\tR\bmodelUri\x12\x1d\n" +
	"\n" +
	"final_loss\x18\a \x01(\x01R\tfinalLoss\x12)\n" +
	"\x10training_seconds\x18\b \x01(\x03R\x0ftrainingSeconds\x12!\n" +
	"\fclass_labels\x18\t \x03(\tR\vclassLabels\"\xa3\x01\n" +
	"\x0fEvaluateRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tmodel_uri\x18\x02 \x01(\tR\bmodelUri\x12\x1f\n" +
	"\vdataset_uri\x18\x03 \x01(\tR\n" +
	"datasetUri\x12\x14\n" +
	"\x05split\x18\x04 \x01(\tR\x05split\x12\x1d\n" +
	"\n" +
	"batch_size\x18\x05 \x01(\x05R\tbatchSize\"\x87\x01\n" +
	"\x0fPerClassMetrics\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x1c\n" +
	"\tprecision\x18\x02 \x01(\x01R\tprecision\x12\x16\n" +
	"\x06recall\x18\x03 \x01(\x01R\x06recall\x12\x0e\n" +
	"\x02f1\x18\x04 \x01(\x01R\x02f1\x12\x18\n" +
	"\asupport\x18\x05 \x01(\x03R\asupport\"\x88\x01\n" +
	"\x10EvaluateResponse\x12\x1a\n" +
	"\baccuracy\x18\x01 \x01(\x01R\baccuracy\x125\n" +
	"\tper_class\x18\x02 \x03(\v2\x18.foundry.PerClassMetricsR\bperClass\x12!\n" +
	"\fsample_count\x18\x03 \x01(\x03R\vsampleCount\"X\n" +
	"\x0ePredictRequest\x12\x1b\n" +
	"\tmodel_uri\x18\x01 \x01(\tR\bmodelUri\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12\x13\n" +
	"\x05top_k\x18\x03 \x01(\x05R\x04topK\"B\n" +
	"\n" +
	"Prediction\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"H\n" +
	"\x0fPredictResponse\x125\n" +
	"\vpredictions\x18\x01 \x03(\v2\x13.foundry.PredictionR\vpredictions2Q\n" +
	"\n" +
	"LLMService\x12C\n" +
	"\bComplete\x12\x1a.foundry.CompletionRequest\x1a\x1b.foundry.CompletionResponse2\xc9\x01\n" +
	"\x0eTrainerService\x128\n" +
	"\x05Train\x12\x15.foundry.TrainRequest\x1a\x16.foundry.TrainProgress0\x01\x12?\n" +
	"\bEvaluate\x12\x18.foundry.EvaluateRequest\x1a\x19.foundry.EvaluateResponse\x12<\n" +
	"\aPredict\x12\x17.foundry.PredictRequest\x1a\x18.foundry.PredictResponseB'Z%github.com/modelfoundry/foundry/protob\x06proto3"

var (
	file_foundry_proto_rawDescOnce sync.Once
	file_foundry_proto_rawDescData []byte
)

func file_foundry_proto_rawDescGZIP() []byte {
	file_foundry_proto_rawDescOnce.Do(func() {
		file_foundry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_foundry_proto_rawDesc), len(file_foundry_proto_rawDesc)))
	})
	return file_foundry_proto_rawDescData
}

var file_foundry_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_foundry_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_foundry_proto_goTypes = []any{
	(ChatMessage_Role)(0),      // 0: foundry.ChatMessage.Role
	(*ChatMessage)(nil),        // 1: foundry.ChatMessage
	(*CompletionRequest)(nil),  // 2: foundry.CompletionRequest
	(*CompletionResponse)(nil), // 3: foundry.CompletionResponse
	(*TrainRequest)(nil),       // 4: foundry.TrainRequest
	(*TrainProgress)(nil),      // 5: foundry.TrainProgress
	(*EvaluateRequest)(nil),    // 6: foundry.EvaluateRequest
	(*PerClassMetrics)(nil),    // 7: foundry.PerClassMetrics
	(*EvaluateResponse)(nil),   // 8: foundry.EvaluateResponse
	(*PredictRequest)(nil),     // 9: foundry.PredictRequest
	(*Prediction)(nil),         // 10: foundry.Prediction
	(*PredictResponse)(nil),    // 11: foundry.PredictResponse
}
var file_foundry_proto_depIdxs = []int32{
	0,  // 0: foundry.ChatMessage.role:type_name -> foundry.ChatMessage.Role
	1,  // 1: foundry.CompletionRequest.messages:type_name -> foundry.ChatMessage
	7,  // 2: foundry.EvaluateResponse.per_class:type_name -> foundry.PerClassMetrics
	10, // 3: foundry.PredictResponse.predictions:type_name -> foundry.Prediction
	2,  // 4: foundry.LLMService.Complete:input_type -> foundry.CompletionRequest
	4,  // 5: foundry.TrainerService.Train:input_type -> foundry.TrainRequest
	6,  // 6: foundry.TrainerService.Evaluate:input_type -> foundry.EvaluateRequest
	9,  // 7: foundry.TrainerService.Predict:input_type -> foundry.PredictRequest
	3,  // 8: foundry.LLMService.Complete:output_type -> foundry.CompletionResponse
	5,  // 9: foundry.TrainerService.Train:output_type -> foundry.TrainProgress
	8,  // 10: foundry.TrainerService.Evaluate:output_type -> foundry.EvaluateResponse
	11, // 11: foundry.TrainerService.Predict:output_type -> foundry.PredictResponse
	8,  // [8:12] is the sub-list for method output_type
	4,  // [4:8] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_foundry_proto_init() }
func file_foundry_proto_init() {
	if File_foundry_proto != nil {
		return
	}
	file_foundry_proto_msgTypes[1].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_foundry_proto_rawDesc), len(file_foundry_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_foundry_proto_goTypes,
		DependencyIndexes: file_foundry_proto_depIdxs,
		EnumInfos:         file_foundry_proto_enumTypes,
		MessageInfos:      file_foundry_proto_msgTypes,
	}.Build()
	File_foundry_proto = out.File
	file_foundry_proto_goTypes = nil
	file_foundry_proto_depIdxs = nil
}
