// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: assignment/v1/assignment.proto

package assignmentv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type AssignmentStatus int32

const (
	AssignmentStatus_ASSIGNMENT_STATUS_UNSPECIFIED AssignmentStatus = 0
	AssignmentStatus_ASSIGNMENT_STATUS_PENDING     AssignmentStatus = 1
	AssignmentStatus_ASSIGNMENT_STATUS_ACCEPTED    AssignmentStatus = 2
	AssignmentStatus_ASSIGNMENT_STATUS_DECLINED    AssignmentStatus = 3
	AssignmentStatus_ASSIGNMENT_STATUS_COMPLETED   AssignmentStatus = 4
)

// Enum value maps for AssignmentStatus.
var (
	AssignmentStatus_name = map[int32]string{
		0: "ASSIGNMENT_STATUS_UNSPECIFIED",
		1: "ASSIGNMENT_STATUS_PENDING",
		2: "ASSIGNMENT_STATUS_ACCEPTED",
		3: "ASSIGNMENT_STATUS_DECLINED",
		4: "ASSIGNMENT_STATUS_COMPLETED",
	}
	AssignmentStatus_value = map[string]int32{
		"ASSIGNMENT_STATUS_UNSPECIFIED": 0,
		"ASSIGNMENT_STATUS_PENDING":     1,
		"ASSIGNMENT_STATUS_ACCEPTED":    2,
		"ASSIGNMENT_STATUS_DECLINED":    3,
		"ASSIGNMENT_STATUS_COMPLETED":   4,
	}
)

func (x AssignmentStatus) Enum() *AssignmentStatus {
	p := new(AssignmentStatus)
	*p = x
	return p
}

func (x AssignmentStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AssignmentStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_assignment_v1_assignment_proto_enumTypes[0].Descriptor()
}

func (AssignmentStatus) Type() protoreflect.EnumType {
	return &file_assignment_v1_assignment_proto_enumTypes[0]
}

func (x AssignmentStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AssignmentStatus.Descriptor instead.
func (AssignmentStatus) EnumDescriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{0}
}

type Assignment struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TodoId                  string                 `protobuf:"bytes,2,opt,name=todo_id,json=todoId,proto3" json:"todo_id,omitempty"`
	AssignerUsername        string                 `protobuf:"bytes,3,opt,name=assigner_username,json=assignerUsername,proto3" json:"assigner_username,omitempty"`
	AssigneeUsername        string                 `protobuf:"bytes,4,opt,name=assignee_username,json=assigneeUsername,proto3" json:"assignee_username,omitempty"`
	Status                  AssignmentStatus       `protobuf:"varint,5,opt,name=status,proto3,enum=assignment.v1.AssignmentStatus" json:"status,omitempty"`
	TentativeCompletionDate *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=tentative_completion_date,json=tentativeCompletionDate,proto3" json:"tentative_completion_date,omitempty"`
	DeclineReason           string                 `protobuf:"bytes,7,opt,name=decline_reason,json=declineReason,proto3" json:"decline_reason,omitempty"`
	AssignedAt              *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=assigned_at,json=assignedAt,proto3" json:"assigned_at,omitempty"`
	RespondedAt             *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=responded_at,json=respondedAt,proto3" json:"responded_at,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *Assignment) Reset() {
	*x = Assignment{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Assignment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Assignment) ProtoMessage() {}

func (x *Assignment) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Assignment.ProtoReflect.Descriptor instead.
func (*Assignment) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{0}
}

func (x *Assignment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Assignment) GetTodoId() string {
	if x != nil {
		return x.TodoId
	}
	return ""
}

func (x *Assignment) GetAssignerUsername() string {
	if x != nil {
		return x.AssignerUsername
	}
	return ""
}

func (x *Assignment) GetAssigneeUsername() string {
	if x != nil {
		return x.AssigneeUsername
	}
	return ""
}

func (x *Assignment) GetStatus() AssignmentStatus {
	if x != nil {
		return x.Status
	}
	return AssignmentStatus_ASSIGNMENT_STATUS_UNSPECIFIED
}

func (x *Assignment) GetTentativeCompletionDate() *timestamppb.Timestamp {
	if x != nil {
		return x.TentativeCompletionDate
	}
	return nil
}

func (x *Assignment) GetDeclineReason() string {
	if x != nil {
		return x.DeclineReason
	}
	return ""
}

func (x *Assignment) GetAssignedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.AssignedAt
	}
	return nil
}

func (x *Assignment) GetRespondedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RespondedAt
	}
	return nil
}

type AssignTodoRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TodoId           string                 `protobuf:"bytes,1,opt,name=todo_id,json=todoId,proto3" json:"todo_id,omitempty"`
	AssigneeUsername string                 `protobuf:"bytes,2,opt,name=assignee_username,json=assigneeUsername,proto3" json:"assignee_username,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AssignTodoRequest) Reset() {
	*x = AssignTodoRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignTodoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignTodoRequest) ProtoMessage() {}

func (x *AssignTodoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignTodoRequest.ProtoReflect.Descriptor instead.
func (*AssignTodoRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{1}
}

func (x *AssignTodoRequest) GetTodoId() string {
	if x != nil {
		return x.TodoId
	}
	return ""
}

func (x *AssignTodoRequest) GetAssigneeUsername() string {
	if x != nil {
		return x.AssigneeUsername
	}
	return ""
}

type AssignTodoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assignment    *Assignment            `protobuf:"bytes,1,opt,name=assignment,proto3" json:"assignment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignTodoResponse) Reset() {
	*x = AssignTodoResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignTodoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignTodoResponse) ProtoMessage() {}

func (x *AssignTodoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignTodoResponse.ProtoReflect.Descriptor instead.
func (*AssignTodoResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{2}
}

func (x *AssignTodoResponse) GetAssignment() *Assignment {
	if x != nil {
		return x.Assignment
	}
	return nil
}

type RespondToAssignmentRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	AssignmentId string                 `protobuf:"bytes,1,opt,name=assignment_id,json=assignmentId,proto3" json:"assignment_id,omitempty"`
	Accepted     bool                   `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	// Set when accepting.
	TentativeCompletionDate *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=tentative_completion_date,json=tentativeCompletionDate,proto3" json:"tentative_completion_date,omitempty"`
	// Optionally set when declining.
	DeclineReason string `protobuf:"bytes,4,opt,name=decline_reason,json=declineReason,proto3" json:"decline_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RespondToAssignmentRequest) Reset() {
	*x = RespondToAssignmentRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RespondToAssignmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RespondToAssignmentRequest) ProtoMessage() {}

func (x *RespondToAssignmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RespondToAssignmentRequest.ProtoReflect.Descriptor instead.
func (*RespondToAssignmentRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{3}
}

func (x *RespondToAssignmentRequest) GetAssignmentId() string {
	if x != nil {
		return x.AssignmentId
	}
	return ""
}

func (x *RespondToAssignmentRequest) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *RespondToAssignmentRequest) GetTentativeCompletionDate() *timestamppb.Timestamp {
	if x != nil {
		return x.TentativeCompletionDate
	}
	return nil
}

func (x *RespondToAssignmentRequest) GetDeclineReason() string {
	if x != nil {
		return x.DeclineReason
	}
	return ""
}

type RespondToAssignmentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assignment    *Assignment            `protobuf:"bytes,1,opt,name=assignment,proto3" json:"assignment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RespondToAssignmentResponse) Reset() {
	*x = RespondToAssignmentResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RespondToAssignmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RespondToAssignmentResponse) ProtoMessage() {}

func (x *RespondToAssignmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RespondToAssignmentResponse.ProtoReflect.Descriptor instead.
func (*RespondToAssignmentResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{4}
}

func (x *RespondToAssignmentResponse) GetAssignment() *Assignment {
	if x != nil {
		return x.Assignment
	}
	return nil
}

type ListMyAssignmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyAssignmentsRequest) Reset() {
	*x = ListMyAssignmentsRequest{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyAssignmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyAssignmentsRequest) ProtoMessage() {}

func (x *ListMyAssignmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyAssignmentsRequest.ProtoReflect.Descriptor instead.
func (*ListMyAssignmentsRequest) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{5}
}

type ListMyAssignmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assignments   []*Assignment          `protobuf:"bytes,1,rep,name=assignments,proto3" json:"assignments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyAssignmentsResponse) Reset() {
	*x = ListMyAssignmentsResponse{}
	mi := &file_assignment_v1_assignment_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyAssignmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyAssignmentsResponse) ProtoMessage() {}

func (x *ListMyAssignmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assignment_v1_assignment_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyAssignmentsResponse.ProtoReflect.Descriptor instead.
func (*ListMyAssignmentsResponse) Descriptor() ([]byte, []int) {
	return file_assignment_v1_assignment_proto_rawDescGZIP(), []int{6}
}

func (x *ListMyAssignmentsResponse) GetAssignments() []*Assignment {
	if x != nil {
		return x.Assignments
	}
	return nil
}

var File_assignment_v1_assignment_proto protoreflect.FileDescriptor

const file_assignment_v1_assignment_proto_rawDesc = "" +
	"\n" +
	"\x1eassignment/v1/assignment.proto\x12\rassignment.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xc3\x03\n" +
	"\n" +
	"Assignment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\atodo_id\x18\x02 \x01(\tR\x06todoId\x12+\n" +
	"\x11assigner_username\x18\x03 \x01(\tR\x10assignerUsername\x12+\n" +
	"\x11assignee_username\x18\x04 \x01(\tR\x10assigneeUsername\x127\n" +
	"\x06status\x18\x05 \x01(\x0e2\x1f.assignment.v1.AssignmentStatusR\x06status\x12V\n" +
	"\x19tentative_completion_date\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x17tentativeCompletionDate\x12%\n" +
	"\x0edecline_reason\x18\a \x01(\tR\rdeclineReason\x12;\n" +
	"\vassigned_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"assignedAt\x12=\n" +
	"\fresponded_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\vrespondedAt\"Y\n" +
	"\x11AssignTodoRequest\x12\x17\n" +
	"\atodo_id\x18\x01 \x01(\tR\x06todoId\x12+\n" +
	"\x11assignee_username\x18\x02 \x01(\tR\x10assigneeUsername\"O\n" +
	"\x12AssignTodoResponse\x129\n" +
	"\n" +
	"assignment\x18\x01 \x01(\v2\x19.assignment.v1.AssignmentR\n" +
	"assignment\"\xdc\x01\n" +
	"\x1aRespondToAssignmentRequest\x12#\n" +
	"\rassignment_id\x18\x01 \x01(\tR\fassignmentId\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\bR\baccepted\x12V\n" +
	"\x19tentative_completion_date\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x17tentativeCompletionDate\x12%\n" +
	"\x0edecline_reason\x18\x04 \x01(\tR\rdeclineReason\"X\n" +
	"\x1bRespondToAssignmentResponse\x129\n" +
	"\n" +
	"assignment\x18\x01 \x01(\v2\x19.assignment.v1.AssignmentR\n" +
	"assignment\"\x1a\n" +
	"\x18ListMyAssignmentsRequest\"X\n" +
	"\x19ListMyAssignmentsResponse\x12;\n" +
	"\vassignments\x18\x01 \x03(\v2\x19.assignment.v1.AssignmentR\vassignments*\xb5\x01\n" +
	"\x10AssignmentStatus\x12!\n" +
	"\x1dASSIGNMENT_STATUS_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19ASSIGNMENT_STATUS_PENDING\x10\x01\x12\x1e\n" +
	"\x1aASSIGNMENT_STATUS_ACCEPTED\x10\x02\x12\x1e\n" +
	"\x1aASSIGNMENT_STATUS_DECLINED\x10\x03\x12\x1f\n" +
	"\x1bASSIGNMENT_STATUS_COMPLETED\x10\x042\xbc\x02\n" +
	"\x11AssignmentService\x12Q\n" +
	"\n" +
	"AssignTodo\x12 .assignment.v1.AssignTodoRequest\x1a!.assignment.v1.AssignTodoResponse\x12l\n" +
	"\x13RespondToAssignment\x12).assignment.v1.RespondToAssignmentRequest\x1a*.assignment.v1.RespondToAssignmentResponse\x12f\n" +
	"\x11ListMyAssignments\x12'.assignment.v1.ListMyAssignmentsRequest\x1a(.assignment.v1.ListMyAssignmentsResponseBMZKgithub.com/ekaraca/taskshare/api/proto/assignment/v1/generated;assignmentv1b\x06proto3"

var (
	file_assignment_v1_assignment_proto_rawDescOnce sync.Once
	file_assignment_v1_assignment_proto_rawDescData []byte
)

func file_assignment_v1_assignment_proto_rawDescGZIP() []byte {
	file_assignment_v1_assignment_proto_rawDescOnce.Do(func() {
		file_assignment_v1_assignment_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_assignment_v1_assignment_proto_rawDesc), len(file_assignment_v1_assignment_proto_rawDesc)))
	})
	return file_assignment_v1_assignment_proto_rawDescData
}

var file_assignment_v1_assignment_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_assignment_v1_assignment_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_assignment_v1_assignment_proto_goTypes = []any{
	(AssignmentStatus)(0),               // 0: assignment.v1.AssignmentStatus
	(*Assignment)(nil),                  // 1: assignment.v1.Assignment
	(*AssignTodoRequest)(nil),           // 2: assignment.v1.AssignTodoRequest
	(*AssignTodoResponse)(nil),          // 3: assignment.v1.AssignTodoResponse
	(*RespondToAssignmentRequest)(nil),  // 4: assignment.v1.RespondToAssignmentRequest
	(*RespondToAssignmentResponse)(nil), // 5: assignment.v1.RespondToAssignmentResponse
	(*ListMyAssignmentsRequest)(nil),    // 6: assignment.v1.ListMyAssignmentsRequest
	(*ListMyAssignmentsResponse)(nil),   // 7: assignment.v1.ListMyAssignmentsResponse
	(*timestamppb.Timestamp)(nil),       // 8: google.protobuf.Timestamp
}
var file_assignment_v1_assignment_proto_depIdxs = []int32{
	0,  // 0: assignment.v1.Assignment.status:type_name -> assignment.v1.AssignmentStatus
	8,  // 1: assignment.v1.Assignment.tentative_completion_date:type_name -> google.protobuf.Timestamp
	8,  // 2: assignment.v1.Assignment.assigned_at:type_name -> google.protobuf.Timestamp
	8,  // 3: assignment.v1.Assignment.responded_at:type_name -> google.protobuf.Timestamp
	1,  // 4: assignment.v1.AssignTodoResponse.assignment:type_name -> assignment.v1.Assignment
	8,  // 5: assignment.v1.RespondToAssignmentRequest.tentative_completion_date:type_name -> google.protobuf.Timestamp
	1,  // 6: assignment.v1.RespondToAssignmentResponse.assignment:type_name -> assignment.v1.Assignment
	1,  // 7: assignment.v1.ListMyAssignmentsResponse.assignments:type_name -> assignment.v1.Assignment
	2,  // 8: assignment.v1.AssignmentService.AssignTodo:input_type -> assignment.v1.AssignTodoRequest
	4,  // 9: assignment.v1.AssignmentService.RespondToAssignment:input_type -> assignment.v1.RespondToAssignmentRequest
	6,  // 10: assignment.v1.AssignmentService.ListMyAssignments:input_type -> assignment.v1.ListMyAssignmentsRequest
	3,  // 11: assignment.v1.AssignmentService.AssignTodo:output_type -> assignment.v1.AssignTodoResponse
	5,  // 12: assignment.v1.AssignmentService.RespondToAssignment:output_type -> assignment.v1.RespondToAssignmentResponse
	7,  // 13: assignment.v1.AssignmentService.ListMyAssignments:output_type -> assignment.v1.ListMyAssignmentsResponse
	11, // [11:14] is the sub-list for method output_type
	8,  // [8:11] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_assignment_v1_assignment_proto_init() }
func file_assignment_v1_assignment_proto_init() {
	if File_assignment_v1_assignment_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_assignment_v1_assignment_proto_rawDesc), len(file_assignment_v1_assignment_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_assignment_v1_assignment_proto_goTypes,
		DependencyIndexes: file_assignment_v1_assignment_proto_depIdxs,
		EnumInfos:         file_assignment_v1_assignment_proto_enumTypes,
		MessageInfos:      file_assignment_v1_assignment_proto_msgTypes,
	}.Build()
	File_assignment_v1_assignment_proto = out.File
	file_assignment_v1_assignment_proto_goTypes = nil
	file_assignment_v1_assignment_proto_depIdxs = nil
}
