// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: scans/v1/scans.proto

package scansv1

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

type ScanDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDocumentRequest) Reset() {
	*x = ScanDocumentRequest{}
	mi := &file_scans_v1_scans_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentRequest) ProtoMessage() {}

func (x *ScanDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentRequest.ProtoReflect.Descriptor instead.
func (*ScanDocumentRequest) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{0}
}

func (x *ScanDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ScanDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ScanDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type Scan struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	StoragePath   string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	FileSize      int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	ExtractedName string                 `protobuf:"bytes,5,opt,name=extracted_name,json=extractedName,proto3" json:"extracted_name,omitempty"`
	ExtractedText string                 `protobuf:"bytes,6,opt,name=extracted_text,json=extractedText,proto3" json:"extracted_text,omitempty"`
	SearchQuery   string                 `protobuf:"bytes,7,opt,name=search_query,json=searchQuery,proto3" json:"search_query,omitempty"`
	Summary       string                 `protobuf:"bytes,8,opt,name=summary,proto3" json:"summary,omitempty"`
	Status        string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Scan) Reset() {
	*x = Scan{}
	mi := &file_scans_v1_scans_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Scan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Scan) ProtoMessage() {}

func (x *Scan) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Scan.ProtoReflect.Descriptor instead.
func (*Scan) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{1}
}

func (x *Scan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Scan) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Scan) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Scan) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Scan) GetExtractedName() string {
	if x != nil {
		return x.ExtractedName
	}
	return ""
}

func (x *Scan) GetExtractedText() string {
	if x != nil {
		return x.ExtractedText
	}
	return ""
}

func (x *Scan) GetSearchQuery() string {
	if x != nil {
		return x.SearchQuery
	}
	return ""
}

func (x *Scan) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Scan) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Scan) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Scan) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Scan) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ScanResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ScanId        string                 `protobuf:"bytes,2,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Url           string                 `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	Score         float32                `protobuf:"fixed32,6,opt,name=score,proto3" json:"score,omitempty"`
	Position      int32                  `protobuf:"varint,7,opt,name=position,proto3" json:"position,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanResult) Reset() {
	*x = ScanResult{}
	mi := &file_scans_v1_scans_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanResult) ProtoMessage() {}

func (x *ScanResult) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanResult.ProtoReflect.Descriptor instead.
func (*ScanResult) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{2}
}

func (x *ScanResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanResult) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *ScanResult) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ScanResult) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *ScanResult) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ScanResult) GetScore() float32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *ScanResult) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *ScanResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ScanDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scan          *Scan                  `protobuf:"bytes,1,opt,name=scan,proto3" json:"scan,omitempty"`
	Results       []*ScanResult          `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDocumentResponse) Reset() {
	*x = ScanDocumentResponse{}
	mi := &file_scans_v1_scans_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDocumentResponse) ProtoMessage() {}

func (x *ScanDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDocumentResponse.ProtoReflect.Descriptor instead.
func (*ScanDocumentResponse) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{3}
}

func (x *ScanDocumentResponse) GetScan() *Scan {
	if x != nil {
		return x.Scan
	}
	return nil
}

func (x *ScanDocumentResponse) GetResults() []*ScanResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type GetScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanRequest) Reset() {
	*x = GetScanRequest{}
	mi := &file_scans_v1_scans_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanRequest) ProtoMessage() {}

func (x *GetScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanRequest.ProtoReflect.Descriptor instead.
func (*GetScanRequest) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{4}
}

func (x *GetScanRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scan          *Scan                  `protobuf:"bytes,1,opt,name=scan,proto3" json:"scan,omitempty"`
	Results       []*ScanResult          `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanResponse) Reset() {
	*x = GetScanResponse{}
	mi := &file_scans_v1_scans_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanResponse) ProtoMessage() {}

func (x *GetScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanResponse.ProtoReflect.Descriptor instead.
func (*GetScanResponse) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{5}
}

func (x *GetScanResponse) GetScan() *Scan {
	if x != nil {
		return x.Scan
	}
	return nil
}

func (x *GetScanResponse) GetResults() []*ScanResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansRequest) Reset() {
	*x = ListScansRequest{}
	mi := &file_scans_v1_scans_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansRequest) ProtoMessage() {}

func (x *ListScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansRequest.ProtoReflect.Descriptor instead.
func (*ListScansRequest) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{6}
}

func (x *ListScansRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scans         []*Scan                `protobuf:"bytes,1,rep,name=scans,proto3" json:"scans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansResponse) Reset() {
	*x = ListScansResponse{}
	mi := &file_scans_v1_scans_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansResponse) ProtoMessage() {}

func (x *ListScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansResponse.ProtoReflect.Descriptor instead.
func (*ListScansResponse) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{7}
}

func (x *ListScansResponse) GetScans() []*Scan {
	if x != nil {
		return x.Scans
	}
	return nil
}

type ExportScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportScansRequest) Reset() {
	*x = ExportScansRequest{}
	mi := &file_scans_v1_scans_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportScansRequest) ProtoMessage() {}

func (x *ExportScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportScansRequest.ProtoReflect.Descriptor instead.
func (*ExportScansRequest) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{8}
}

func (x *ExportScansRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportScansResponse) Reset() {
	*x = ExportScansResponse{}
	mi := &file_scans_v1_scans_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportScansResponse) ProtoMessage() {}

func (x *ExportScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scans_v1_scans_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportScansResponse.ProtoReflect.Descriptor instead.
func (*ExportScansResponse) Descriptor() ([]byte, []int) {
	return file_scans_v1_scans_proto_rawDescGZIP(), []int{9}
}

func (x *ExportScansResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportScansResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_scans_v1_scans_proto protoreflect.FileDescriptor

const file_scans_v1_scans_proto_rawDesc = "" +
	"\n" +
	"\x14scans/v1/scans.proto\x12\bscans.v1\"n\n" +
	"\x13ScanDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\xf8\x02\n" +
	"\x04Scan\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12%\n" +
	"\x0eextracted_name\x18\x05 \x01(\tR\rextractedName\x12%\n" +
	"\x0eextracted_text\x18\x06 \x01(\tR\rextractedText\x12!\n" +
	"\fsearch_query\x18\a \x01(\tR\vsearchQuery\x12\x18\n" +
	"\asummary\x18\b \x01(\tR\asummary\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xc8\x01\n" +
	"\n" +
	"ScanResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\ascan_id\x18\x02 \x01(\tR\x06scanId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x10\n" +
	"\x03url\x18\x04 \x01(\tR\x03url\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12\x14\n" +
	"\x05score\x18\x06 \x01(\x02R\x05score\x12\x1a\n" +
	"\bposition\x18\a \x01(\x05R\bposition\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"j\n" +
	"\x14ScanDocumentResponse\x12\"\n" +
	"\x04scan\x18\x01 \x01(\v2\x0e.scans.v1.ScanR\x04scan\x12.\n" +
	"\aresults\x18\x02 \x03(\v2\x14.scans.v1.ScanResultR\aresults\" \n" +
	"\x0eGetScanRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"e\n" +
	"\x0fGetScanResponse\x12\"\n" +
	"\x04scan\x18\x01 \x01(\v2\x0e.scans.v1.ScanR\x04scan\x12.\n" +
	"\aresults\x18\x02 \x03(\v2\x14.scans.v1.ScanResultR\aresults\"(\n" +
	"\x10ListScansRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"9\n" +
	"\x11ListScansResponse\x12$\n" +
	"\x05scans\x18\x01 \x03(\v2\x0e.scans.v1.ScanR\x05scans\"*\n" +
	"\x12ExportScansRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"E\n" +
	"\x13ExportScansResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xae\x02\n" +
	"\vScanService\x12M\n" +
	"\fScanDocument\x12\x1d.scans.v1.ScanDocumentRequest\x1a\x1e.scans.v1.ScanDocumentResponse\x12>\n" +
	"\aGetScan\x12\x18.scans.v1.GetScanRequest\x1a\x19.scans.v1.GetScanResponse\x12D\n" +
	"\tListScans\x12\x1a.scans.v1.ListScansRequest\x1a\x1b.scans.v1.ListScansResponse\x12J\n" +
	"\vExportScans\x12\x1c.scans.v1.ExportScansRequest\x1a\x1d.scans.v1.ExportScansResponseB=Z;github.com/tobi-salau/resumescan/gen/proto/scans/v1;scansv1b\x06proto3"

var (
	file_scans_v1_scans_proto_rawDescOnce sync.Once
	file_scans_v1_scans_proto_rawDescData []byte
)

func file_scans_v1_scans_proto_rawDescGZIP() []byte {
	file_scans_v1_scans_proto_rawDescOnce.Do(func() {
		file_scans_v1_scans_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scans_v1_scans_proto_rawDesc), len(file_scans_v1_scans_proto_rawDesc)))
	})
	return file_scans_v1_scans_proto_rawDescData
}

var file_scans_v1_scans_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_scans_v1_scans_proto_goTypes = []any{
	(*ScanDocumentRequest)(nil),  // 0: scans.v1.ScanDocumentRequest
	(*Scan)(nil),                 // 1: scans.v1.Scan
	(*ScanResult)(nil),           // 2: scans.v1.ScanResult
	(*ScanDocumentResponse)(nil), // 3: scans.v1.ScanDocumentResponse
	(*GetScanRequest)(nil),       // 4: scans.v1.GetScanRequest
	(*GetScanResponse)(nil),      // 5: scans.v1.GetScanResponse
	(*ListScansRequest)(nil),     // 6: scans.v1.ListScansRequest
	(*ListScansResponse)(nil),    // 7: scans.v1.ListScansResponse
	(*ExportScansRequest)(nil),   // 8: scans.v1.ExportScansRequest
	(*ExportScansResponse)(nil),  // 9: scans.v1.ExportScansResponse
}
var file_scans_v1_scans_proto_depIdxs = []int32{
	1, // 0: scans.v1.ScanDocumentResponse.scan:type_name -> scans.v1.Scan
	2, // 1: scans.v1.ScanDocumentResponse.results:type_name -> scans.v1.ScanResult
	1, // 2: scans.v1.GetScanResponse.scan:type_name -> scans.v1.Scan
	2, // 3: scans.v1.GetScanResponse.results:type_name -> scans.v1.ScanResult
	1, // 4: scans.v1.ListScansResponse.scans:type_name -> scans.v1.Scan
	0, // 5: scans.v1.ScanService.ScanDocument:input_type -> scans.v1.ScanDocumentRequest
	4, // 6: scans.v1.ScanService.GetScan:input_type -> scans.v1.GetScanRequest
	6, // 7: scans.v1.ScanService.ListScans:input_type -> scans.v1.ListScansRequest
	8, // 8: scans.v1.ScanService.ExportScans:input_type -> scans.v1.ExportScansRequest
	3, // 9: scans.v1.ScanService.ScanDocument:output_type -> scans.v1.ScanDocumentResponse
	5, // 10: scans.v1.ScanService.GetScan:output_type -> scans.v1.GetScanResponse
	7, // 11: scans.v1.ScanService.ListScans:output_type -> scans.v1.ListScansResponse
	9, // 12: scans.v1.ScanService.ExportScans:output_type -> scans.v1.ExportScansResponse
	9, // [9:13] is the sub-list for method output_type
	5, // [5:9] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_scans_v1_scans_proto_init() }
func file_scans_v1_scans_proto_init() {
	if File_scans_v1_scans_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scans_v1_scans_proto_rawDesc), len(file_scans_v1_scans_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_scans_v1_scans_proto_goTypes,
		DependencyIndexes: file_scans_v1_scans_proto_depIdxs,
		MessageInfos:      file_scans_v1_scans_proto_msgTypes,
	}.Build()
	File_scans_v1_scans_proto = out.File
	file_scans_v1_scans_proto_goTypes = nil
	file_scans_v1_scans_proto_depIdxs = nil
}
