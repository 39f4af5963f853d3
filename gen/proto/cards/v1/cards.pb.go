// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cards/v1/cards.proto

package cardsv1

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

type ExportFormat int32

const (
	ExportFormat_EXPORT_FORMAT_UNSPECIFIED ExportFormat = 0
	ExportFormat_EXPORT_FORMAT_XLSX        ExportFormat = 1
	ExportFormat_EXPORT_FORMAT_VCARD       ExportFormat = 2
)

// Enum value maps for ExportFormat.
var (
	ExportFormat_name = map[int32]string{
		0: "EXPORT_FORMAT_UNSPECIFIED",
		1: "EXPORT_FORMAT_XLSX",
		2: "EXPORT_FORMAT_VCARD",
	}
	ExportFormat_value = map[string]int32{
		"EXPORT_FORMAT_UNSPECIFIED": 0,
		"EXPORT_FORMAT_XLSX":        1,
		"EXPORT_FORMAT_VCARD":       2,
	}
)

func (x ExportFormat) Enum() *ExportFormat {
	p := new(ExportFormat)
	*p = x
	return p
}

func (x ExportFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ExportFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_cards_v1_cards_proto_enumTypes[0].Descriptor()
}

func (ExportFormat) Type() protoreflect.EnumType {
	return &file_cards_v1_cards_proto_enumTypes[0]
}

func (x ExportFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ExportFormat.Descriptor instead.
func (ExportFormat) EnumDescriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{0}
}

type Card struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	ImageExt      string                 `protobuf:"bytes,3,opt,name=image_ext,json=imageExt,proto3" json:"image_ext,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Card) Reset() {
	*x = Card{}
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Card) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Card) ProtoMessage() {}

func (x *Card) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Card.ProtoReflect.Descriptor instead.
func (*Card) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{0}
}

func (x *Card) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Card) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Card) GetImageExt() string {
	if x != nil {
		return x.ImageExt
	}
	return ""
}

func (x *Card) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Card) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Field struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CardId        string                 `protobuf:"bytes,2,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	RawText       string                 `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Value         string                 `protobuf:"bytes,5,opt,name=value,proto3" json:"value,omitempty"`
	SpanStart     int32                  `protobuf:"varint,6,opt,name=span_start,json=spanStart,proto3" json:"span_start,omitempty"`
	SpanEnd       int32                  `protobuf:"varint,7,opt,name=span_end,json=spanEnd,proto3" json:"span_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Field) Reset() {
	*x = Field{}
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Field) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Field) ProtoMessage() {}

func (x *Field) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Field.ProtoReflect.Descriptor instead.
func (*Field) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{1}
}

func (x *Field) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Field) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

func (x *Field) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Field) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Field) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Field) GetSpanStart() int32 {
	if x != nil {
		return x.SpanStart
	}
	return 0
}

func (x *Field) GetSpanEnd() int32 {
	if x != nil {
		return x.SpanEnd
	}
	return 0
}

type ScanJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CardId        string                 `protobuf:"bytes,2,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,4,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	FieldCount    int32                  `protobuf:"varint,6,opt,name=field_count,json=fieldCount,proto3" json:"field_count,omitempty"`
	StartedAt     string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanJob) Reset() {
	*x = ScanJob{}
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanJob) ProtoMessage() {}

func (x *ScanJob) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanJob.ProtoReflect.Descriptor instead.
func (*ScanJob) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{2}
}

func (x *ScanJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanJob) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

func (x *ScanJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ScanJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ScanJob) GetFieldCount() int32 {
	if x != nil {
		return x.FieldCount
	}
	return 0
}

func (x *ScanJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ScanJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type CreateCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DisplayName   string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Image         []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	ImageExt      string                 `protobuf:"bytes,3,opt,name=image_ext,json=imageExt,proto3" json:"image_ext,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCardRequest) Reset() {
	*x = CreateCardRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCardRequest) ProtoMessage() {}

func (x *CreateCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCardRequest.ProtoReflect.Descriptor instead.
func (*CreateCardRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{3}
}

func (x *CreateCardRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *CreateCardRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *CreateCardRequest) GetImageExt() string {
	if x != nil {
		return x.ImageExt
	}
	return ""
}

type CreateCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Card          *Card                  `protobuf:"bytes,1,opt,name=card,proto3" json:"card,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCardResponse) Reset() {
	*x = CreateCardResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCardResponse) ProtoMessage() {}

func (x *CreateCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCardResponse.ProtoReflect.Descriptor instead.
func (*CreateCardResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{4}
}

func (x *CreateCardResponse) GetCard() *Card {
	if x != nil {
		return x.Card
	}
	return nil
}

type ScanCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CardId        string                 `protobuf:"bytes,1,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardRequest) Reset() {
	*x = ScanCardRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardRequest) ProtoMessage() {}

func (x *ScanCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardRequest.ProtoReflect.Descriptor instead.
func (*ScanCardRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{5}
}

func (x *ScanCardRequest) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

type ScanCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanCardResponse) Reset() {
	*x = ScanCardResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanCardResponse) ProtoMessage() {}

func (x *ScanCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanCardResponse.ProtoReflect.Descriptor instead.
func (*ScanCardResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{6}
}

func (x *ScanCardResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetScanJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobRequest) Reset() {
	*x = GetScanJobRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobRequest) ProtoMessage() {}

func (x *GetScanJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobRequest.ProtoReflect.Descriptor instead.
func (*GetScanJobRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{7}
}

func (x *GetScanJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetScanJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobResponse) Reset() {
	*x = GetScanJobResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobResponse) ProtoMessage() {}

func (x *GetScanJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobResponse.ProtoReflect.Descriptor instead.
func (*GetScanJobResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{8}
}

func (x *GetScanJobResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListCardsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCardsRequest) Reset() {
	*x = ListCardsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCardsRequest) ProtoMessage() {}

func (x *ListCardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCardsRequest.ProtoReflect.Descriptor instead.
func (*ListCardsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{9}
}

type ListCardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cards         []*Card                `protobuf:"bytes,1,rep,name=cards,proto3" json:"cards,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCardsResponse) Reset() {
	*x = ListCardsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCardsResponse) ProtoMessage() {}

func (x *ListCardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCardsResponse.ProtoReflect.Descriptor instead.
func (*ListCardsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{10}
}

func (x *ListCardsResponse) GetCards() []*Card {
	if x != nil {
		return x.Cards
	}
	return nil
}

type ListFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CardId        string                 `protobuf:"bytes,1,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsRequest) Reset() {
	*x = ListFieldsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsRequest) ProtoMessage() {}

func (x *ListFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{11}
}

func (x *ListFieldsRequest) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

type ListFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*Field               `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsResponse) Reset() {
	*x = ListFieldsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsResponse) ProtoMessage() {}

func (x *ListFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{12}
}

func (x *ListFieldsResponse) GetFields() []*Field {
	if x != nil {
		return x.Fields
	}
	return nil
}

type DeleteCardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CardId        string                 `protobuf:"bytes,1,opt,name=card_id,json=cardId,proto3" json:"card_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCardRequest) Reset() {
	*x = DeleteCardRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCardRequest) ProtoMessage() {}

func (x *DeleteCardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCardRequest.ProtoReflect.Descriptor instead.
func (*DeleteCardRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteCardRequest) GetCardId() string {
	if x != nil {
		return x.CardId
	}
	return ""
}

type DeleteCardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCardResponse) Reset() {
	*x = DeleteCardResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCardResponse) ProtoMessage() {}

func (x *DeleteCardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCardResponse.ProtoReflect.Descriptor instead.
func (*DeleteCardResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{14}
}

type ExportCardsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CardIds       []string               `protobuf:"bytes,1,rep,name=card_ids,json=cardIds,proto3" json:"card_ids,omitempty"`
	Format        ExportFormat           `protobuf:"varint,2,opt,name=format,proto3,enum=cards.v1.ExportFormat" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCardsRequest) Reset() {
	*x = ExportCardsRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCardsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCardsRequest) ProtoMessage() {}

func (x *ExportCardsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCardsRequest.ProtoReflect.Descriptor instead.
func (*ExportCardsRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{15}
}

func (x *ExportCardsRequest) GetCardIds() []string {
	if x != nil {
		return x.CardIds
	}
	return nil
}

func (x *ExportCardsRequest) GetFormat() ExportFormat {
	if x != nil {
		return x.Format
	}
	return ExportFormat_EXPORT_FORMAT_UNSPECIFIED
}

type ExportCardsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCardsResponse) Reset() {
	*x = ExportCardsResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCardsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCardsResponse) ProtoMessage() {}

func (x *ExportCardsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCardsResponse.ProtoReflect.Descriptor instead.
func (*ExportCardsResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{16}
}

func (x *ExportCardsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportCardsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_cards_v1_cards_proto protoreflect.FileDescriptor

const file_cards_v1_cards_proto_rawDesc = "" +
	"\n" +
	"\x14cards/v1/cards.proto\x12\bcards.v1\"\x94\x01\n" +
	"\x04Card\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x1b\n" +
	"\timage_ext\x18\x03 \x01(\tR\bimageExt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"\xb7\x01\n" +
	"\x05Field\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\acard_id\x18\x02 \x01(\tR\x06cardId\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\x12\x14\n" +
	"\x05value\x18\x05 \x01(\tR\x05value\x12\x1d\n" +
	"\n" +
	"span_start\x18\x06 \x01(\x05R\tspanStart\x12\x19\n" +
	"\bspan_end\x18\a \x01(\x05R\aspanEnd\"\xf3\x01\n" +
	"\aScanJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\acard_id\x18\x02 \x01(\tR\x06cardId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12!\n" +
	"\fneeds_review\x18\x04 \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vfield_count\x18\x06 \x01(\x05R\n" +
	"fieldCount\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\"i\n" +
	"\x11CreateCardRequest\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12\x1b\n" +
	"\timage_ext\x18\x03 \x01(\tR\bimageExt\"8\n" +
	"\x12CreateCardResponse\x12\"\n" +
	"\x04card\x18\x01 \x01(\v2\x0e.cards.v1.CardR\x04card\"*\n" +
	"\x0fScanCardRequest\x12\x17\n" +
	"\acard_id\x18\x01 \x01(\tR\x06cardId\"7\n" +
	"\x10ScanCardResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.cards.v1.ScanJobR\x03job\"*\n" +
	"\x11GetScanJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"9\n" +
	"\x12GetScanJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.cards.v1.ScanJobR\x03job\"\x12\n" +
	"\x10ListCardsRequest\"9\n" +
	"\x11ListCardsResponse\x12$\n" +
	"\x05cards\x18\x01 \x03(\v2\x0e.cards.v1.CardR\x05cards\",\n" +
	"\x11ListFieldsRequest\x12\x17\n" +
	"\acard_id\x18\x01 \x01(\tR\x06cardId\"=\n" +
	"\x12ListFieldsResponse\x12'\n" +
	"\x06fields\x18\x01 \x03(\v2\x0f.cards.v1.FieldR\x06fields\",\n" +
	"\x11DeleteCardRequest\x12\x17\n" +
	"\acard_id\x18\x01 \x01(\tR\x06cardId\"\x14\n" +
	"\x12DeleteCardResponse\"_\n" +
	"\x12ExportCardsRequest\x12\x19\n" +
	"\bcard_ids\x18\x01 \x03(\tR\acardIds\x12.\n" +
	"\x06format\x18\x02 \x01(\x0e2\x16.cards.v1.ExportFormatR\x06format\"K\n" +
	"\x13ExportCardsResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename*^\n" +
	"\fExportFormat\x12\x1d\n" +
	"\x19EXPORT_FORMAT_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12EXPORT_FORMAT_XLSX\x10\x01\x12\x17\n" +
	"\x13EXPORT_FORMAT_VCARD\x10\x022\x86\x04\n" +
	"\vCardService\x12G\n" +
	"\n" +
	"CreateCard\x12\x1b.cards.v1.CreateCardRequest\x1a\x1c.cards.v1.CreateCardResponse\x12A\n" +
	"\bScanCard\x12\x19.cards.v1.ScanCardRequest\x1a\x1a.cards.v1.ScanCardResponse\x12G\n" +
	"\n" +
	"GetScanJob\x12\x1b.cards.v1.GetScanJobRequest\x1a\x1c.cards.v1.GetScanJobResponse\x12D\n" +
	"\tListCards\x12\x1a.cards.v1.ListCardsRequest\x1a\x1b.cards.v1.ListCardsResponse\x12G\n" +
	"\n" +
	"ListFields\x12\x1b.cards.v1.ListFieldsRequest\x1a\x1c.cards.v1.ListFieldsResponse\x12G\n" +
	"\n" +
	"DeleteCard\x12\x1b.cards.v1.DeleteCardRequest\x1a\x1c.cards.v1.DeleteCardResponse\x12J\n" +
	"\vExportCards\x12\x1c.cards.v1.ExportCardsRequest\x1a\x1d.cards.v1.ExportCardsResponseB&Z$cardvault/gen/proto/cards/v1;cardsv1b\x06proto3"

var (
	file_cards_v1_cards_proto_rawDescOnce sync.Once
	file_cards_v1_cards_proto_rawDescData []byte
)

func file_cards_v1_cards_proto_rawDescGZIP() []byte {
	file_cards_v1_cards_proto_rawDescOnce.Do(func() {
		file_cards_v1_cards_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)))
	})
	return file_cards_v1_cards_proto_rawDescData
}

var file_cards_v1_cards_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_cards_v1_cards_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_cards_v1_cards_proto_goTypes = []any{
	(ExportFormat)(0),           // 0: cards.v1.ExportFormat
	(*Card)(nil),                // 1: cards.v1.Card
	(*Field)(nil),               // 2: cards.v1.Field
	(*ScanJob)(nil),             // 3: cards.v1.ScanJob
	(*CreateCardRequest)(nil),   // 4: cards.v1.CreateCardRequest
	(*CreateCardResponse)(nil),  // 5: cards.v1.CreateCardResponse
	(*ScanCardRequest)(nil),     // 6: cards.v1.ScanCardRequest
	(*ScanCardResponse)(nil),    // 7: cards.v1.ScanCardResponse
	(*GetScanJobRequest)(nil),   // 8: cards.v1.GetScanJobRequest
	(*GetScanJobResponse)(nil),  // 9: cards.v1.GetScanJobResponse
	(*ListCardsRequest)(nil),    // 10: cards.v1.ListCardsRequest
	(*ListCardsResponse)(nil),   // 11: cards.v1.ListCardsResponse
	(*ListFieldsRequest)(nil),   // 12: cards.v1.ListFieldsRequest
	(*ListFieldsResponse)(nil),  // 13: cards.v1.ListFieldsResponse
	(*DeleteCardRequest)(nil),   // 14: cards.v1.DeleteCardRequest
	(*DeleteCardResponse)(nil),  // 15: cards.v1.DeleteCardResponse
	(*ExportCardsRequest)(nil),  // 16: cards.v1.ExportCardsRequest
	(*ExportCardsResponse)(nil), // 17: cards.v1.ExportCardsResponse
}
var file_cards_v1_cards_proto_depIdxs = []int32{
	1,  // 0: cards.v1.CreateCardResponse.card:type_name -> cards.v1.Card
	3,  // 1: cards.v1.ScanCardResponse.job:type_name -> cards.v1.ScanJob
	3,  // 2: cards.v1.GetScanJobResponse.job:type_name -> cards.v1.ScanJob
	1,  // 3: cards.v1.ListCardsResponse.cards:type_name -> cards.v1.Card
	2,  // 4: cards.v1.ListFieldsResponse.fields:type_name -> cards.v1.Field
	0,  // 5: cards.v1.ExportCardsRequest.format:type_name -> cards.v1.ExportFormat
	4,  // 6: cards.v1.CardService.CreateCard:input_type -> cards.v1.CreateCardRequest
	6,  // 7: cards.v1.CardService.ScanCard:input_type -> cards.v1.ScanCardRequest
	8,  // 8: cards.v1.CardService.GetScanJob:input_type -> cards.v1.GetScanJobRequest
	10, // 9: cards.v1.CardService.ListCards:input_type -> cards.v1.ListCardsRequest
	12, // 10: cards.v1.CardService.ListFields:input_type -> cards.v1.ListFieldsRequest
	14, // 11: cards.v1.CardService.DeleteCard:input_type -> cards.v1.DeleteCardRequest
	16, // 12: cards.v1.CardService.ExportCards:input_type -> cards.v1.ExportCardsRequest
	5,  // 13: cards.v1.CardService.CreateCard:output_type -> cards.v1.CreateCardResponse
	7,  // 14: cards.v1.CardService.ScanCard:output_type -> cards.v1.ScanCardResponse
	9,  // 15: cards.v1.CardService.GetScanJob:output_type -> cards.v1.GetScanJobResponse
	11, // 16: cards.v1.CardService.ListCards:output_type -> cards.v1.ListCardsResponse
	13, // 17: cards.v1.CardService.ListFields:output_type -> cards.v1.ListFieldsResponse
	15, // 18: cards.v1.CardService.DeleteCard:output_type -> cards.v1.DeleteCardResponse
	17, // 19: cards.v1.CardService.ExportCards:output_type -> cards.v1.ExportCardsResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_cards_v1_cards_proto_init() }
func file_cards_v1_cards_proto_init() {
	if File_cards_v1_cards_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cards_v1_cards_proto_goTypes,
		DependencyIndexes: file_cards_v1_cards_proto_depIdxs,
		EnumInfos:         file_cards_v1_cards_proto_enumTypes,
		MessageInfos:      file_cards_v1_cards_proto_msgTypes,
	}.Build()
	File_cards_v1_cards_proto = out.File
	file_cards_v1_cards_proto_goTypes = nil
	file_cards_v1_cards_proto_depIdxs = nil
}
