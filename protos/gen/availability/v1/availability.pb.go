// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: availability/v1/availability.proto

package availabilityv1

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

type DayAvailabilityRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId  string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	EmployeeId      string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"` // optional, empty means any employee
	Date            string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`                               // YYYY-MM-DD in the organization's timezone
	DurationMinutes int32                  `protobuf:"varint,4,opt,name=duration_minutes,json=durationMinutes,proto3" json:"duration_minutes,omitempty"`
	StepMinutes     int32                  `protobuf:"varint,5,opt,name=step_minutes,json=stepMinutes,proto3" json:"step_minutes,omitempty"` // 0 uses the organization default
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DayAvailabilityRequest) Reset() {
	*x = DayAvailabilityRequest{}
	mi := &file_availability_v1_availability_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DayAvailabilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DayAvailabilityRequest) ProtoMessage() {}

func (x *DayAvailabilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_availability_v1_availability_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DayAvailabilityRequest.ProtoReflect.Descriptor instead.
func (*DayAvailabilityRequest) Descriptor() ([]byte, []int) {
	return file_availability_v1_availability_proto_rawDescGZIP(), []int{0}
}

func (x *DayAvailabilityRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *DayAvailabilityRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *DayAvailabilityRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DayAvailabilityRequest) GetDurationMinutes() int32 {
	if x != nil {
		return x.DurationMinutes
	}
	return 0
}

func (x *DayAvailabilityRequest) GetStepMinutes() int32 {
	if x != nil {
		return x.StepMinutes
	}
	return 0
}

type Slot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LocalTime     string                 `protobuf:"bytes,1,opt,name=local_time,json=localTime,proto3" json:"local_time,omitempty"` // HH:MM local clock label
	StartUtc      *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=start_utc,json=startUtc,proto3" json:"start_utc,omitempty"`
	EndUtc        *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=end_utc,json=endUtc,proto3" json:"end_utc,omitempty"`
	Available     bool                   `protobuf:"varint,4,opt,name=available,proto3" json:"available,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Slot) Reset() {
	*x = Slot{}
	mi := &file_availability_v1_availability_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Slot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Slot) ProtoMessage() {}

func (x *Slot) ProtoReflect() protoreflect.Message {
	mi := &file_availability_v1_availability_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Slot.ProtoReflect.Descriptor instead.
func (*Slot) Descriptor() ([]byte, []int) {
	return file_availability_v1_availability_proto_rawDescGZIP(), []int{1}
}

func (x *Slot) GetLocalTime() string {
	if x != nil {
		return x.LocalTime
	}
	return ""
}

func (x *Slot) GetStartUtc() *timestamppb.Timestamp {
	if x != nil {
		return x.StartUtc
	}
	return nil
}

func (x *Slot) GetEndUtc() *timestamppb.Timestamp {
	if x != nil {
		return x.EndUtc
	}
	return nil
}

func (x *Slot) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

type DayAvailabilityResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	EmployeeId     string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Date           string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Timezone       string                 `protobuf:"bytes,4,opt,name=timezone,proto3" json:"timezone,omitempty"`
	Closed         bool                   `protobuf:"varint,5,opt,name=closed,proto3" json:"closed,omitempty"`
	Slots          []*Slot                `protobuf:"bytes,6,rep,name=slots,proto3" json:"slots,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DayAvailabilityResponse) Reset() {
	*x = DayAvailabilityResponse{}
	mi := &file_availability_v1_availability_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DayAvailabilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DayAvailabilityResponse) ProtoMessage() {}

func (x *DayAvailabilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_availability_v1_availability_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DayAvailabilityResponse.ProtoReflect.Descriptor instead.
func (*DayAvailabilityResponse) Descriptor() ([]byte, []int) {
	return file_availability_v1_availability_proto_rawDescGZIP(), []int{2}
}

func (x *DayAvailabilityResponse) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *DayAvailabilityResponse) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *DayAvailabilityResponse) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DayAvailabilityResponse) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *DayAvailabilityResponse) GetClosed() bool {
	if x != nil {
		return x.Closed
	}
	return false
}

func (x *DayAvailabilityResponse) GetSlots() []*Slot {
	if x != nil {
		return x.Slots
	}
	return nil
}

var File_availability_v1_availability_proto protoreflect.FileDescriptor

const file_availability_v1_availability_proto_rawDesc = "" +
	"\n" +
	"\"availability/v1/availability.proto\x12\x0favailability.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xc4\x01\n" +
	"\x16DayAvailabilityRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12)\n" +
	"\x10duration_minutes\x18\x04 \x01(\x05R\x0fdurationMinutes\x12!\n" +
	"\fstep_minutes\x18\x05 \x01(\x05R\vstepMinutes\"\xb1\x01\n" +
	"\x04Slot\x12\x1d\n" +
	"\n" +
	"local_time\x18\x01 \x01(\tR\tlocalTime\x127\n" +
	"\tstart_utc\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\bstartUtc\x123\n" +
	"\aend_utc\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x06endUtc\x12\x1c\n" +
	"\tavailable\x18\x04 \x01(\bR\tavailable\"\xd8\x01\n" +
	"\x17DayAvailabilityResponse\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x1a\n" +
	"\btimezone\x18\x04 \x01(\tR\btimezone\x12\x16\n" +
	"\x06closed\x18\x05 \x01(\bR\x06closed\x12+\n" +
	"\x05slots\x18\x06 \x03(\v2\x15.availability.v1.SlotR\x05slots2~\n" +
	"\x13AvailabilityService\x12g\n" +
	"\x12GetDayAvailability\x12'.availability.v1.DayAvailabilityRequest\x1a(.availability.v1.DayAvailabilityResponseBFZDgithub.com/agendly/agendly/protos/gen/availability/v1;availabilityv1b\x06proto3"

var (
	file_availability_v1_availability_proto_rawDescOnce sync.Once
	file_availability_v1_availability_proto_rawDescData []byte
)

func file_availability_v1_availability_proto_rawDescGZIP() []byte {
	file_availability_v1_availability_proto_rawDescOnce.Do(func() {
		file_availability_v1_availability_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_availability_v1_availability_proto_rawDesc), len(file_availability_v1_availability_proto_rawDesc)))
	})
	return file_availability_v1_availability_proto_rawDescData
}

var file_availability_v1_availability_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_availability_v1_availability_proto_goTypes = []any{
	(*DayAvailabilityRequest)(nil),  // 0: availability.v1.DayAvailabilityRequest
	(*Slot)(nil),                    // 1: availability.v1.Slot
	(*DayAvailabilityResponse)(nil), // 2: availability.v1.DayAvailabilityResponse
	(*timestamppb.Timestamp)(nil),   // 3: google.protobuf.Timestamp
}
var file_availability_v1_availability_proto_depIdxs = []int32{
	3, // 0: availability.v1.Slot.start_utc:type_name -> google.protobuf.Timestamp
	3, // 1: availability.v1.Slot.end_utc:type_name -> google.protobuf.Timestamp
	1, // 2: availability.v1.DayAvailabilityResponse.slots:type_name -> availability.v1.Slot
	0, // 3: availability.v1.AvailabilityService.GetDayAvailability:input_type -> availability.v1.DayAvailabilityRequest
	2, // 4: availability.v1.AvailabilityService.GetDayAvailability:output_type -> availability.v1.DayAvailabilityResponse
	4, // [4:5] is the sub-list for method output_type
	3, // [3:4] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_availability_v1_availability_proto_init() }
func file_availability_v1_availability_proto_init() {
	if File_availability_v1_availability_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_availability_v1_availability_proto_rawDesc), len(file_availability_v1_availability_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_availability_v1_availability_proto_goTypes,
		DependencyIndexes: file_availability_v1_availability_proto_depIdxs,
		MessageInfos:      file_availability_v1_availability_proto_msgTypes,
	}.Build()
	File_availability_v1_availability_proto = out.File
	file_availability_v1_availability_proto_goTypes = nil
	file_availability_v1_availability_proto_depIdxs = nil
}
