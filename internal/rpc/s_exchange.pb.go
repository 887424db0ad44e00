// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.23.0
// 	protoc        (unknown)
// source: s_exchange.proto

package rpc

import (
	context "context"
	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// This is a compile-time assertion that a sufficiently up-to-date version
// of the legacy proto package is being used.
const _ = proto.ProtoPackageIsVersion4

type MExchangeMessage struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ExchangeId     string `protobuf:"bytes,1,opt,name=exchangeId,proto3" json:"exchangeId,omitempty"`
	SourceWorkerId int32  `protobuf:"varint,2,opt,name=sourceWorkerId,proto3" json:"sourceWorkerId,omitempty"`
	Eos            bool   `protobuf:"varint,3,opt,name=eos,proto3" json:"eos,omitempty"`
	Payload        []byte `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (x *MExchangeMessage) Reset() {
	*x = MExchangeMessage{}
	if protoimpl.UnsafeEnabled {
		mi := &file_s_exchange_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MExchangeMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MExchangeMessage) ProtoMessage() {}

func (x *MExchangeMessage) ProtoReflect() protoreflect.Message {
	mi := &file_s_exchange_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MExchangeMessage.ProtoReflect.Descriptor instead.
func (*MExchangeMessage) Descriptor() ([]byte, []int) {
	return file_s_exchange_proto_rawDescGZIP(), []int{0}
}

func (x *MExchangeMessage) GetExchangeId() string {
	if x != nil {
		return x.ExchangeId
	}
	return ""
}

func (x *MExchangeMessage) GetSourceWorkerId() int32 {
	if x != nil {
		return x.SourceWorkerId
	}
	return 0
}

func (x *MExchangeMessage) GetEos() bool {
	if x != nil {
		return x.Eos
	}
	return false
}

func (x *MExchangeMessage) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type MDeliverAck struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Time  int64 `protobuf:"varint,1,opt,name=time,proto3" json:"time,omitempty"`
	Count int32 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (x *MDeliverAck) Reset() {
	*x = MDeliverAck{}
	if protoimpl.UnsafeEnabled {
		mi := &file_s_exchange_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MDeliverAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MDeliverAck) ProtoMessage() {}

func (x *MDeliverAck) ProtoReflect() protoreflect.Message {
	mi := &file_s_exchange_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MDeliverAck.ProtoReflect.Descriptor instead.
func (*MDeliverAck) Descriptor() ([]byte, []int) {
	return file_s_exchange_proto_rawDescGZIP(), []int{1}
}

func (x *MDeliverAck) GetTime() int64 {
	if x != nil {
		return x.Time
	}
	return 0
}

func (x *MDeliverAck) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

var File_s_exchange_proto protoreflect.FileDescriptor

var file_s_exchange_proto_rawDesc = []byte{
	0x0a, 0x10, 0x73, 0x5f, 0x65, 0x78, 0x63, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x03, 0x72, 0x70, 0x63, 0x22, 0x86, 0x01, 0x0a, 0x10, 0x4d, 0x45, 0x78, 0x63,
	0x68, 0x61, 0x6e, 0x67, 0x65, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x1e, 0x0a, 0x0a,
	0x65, 0x78, 0x63, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x49, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0a, 0x65, 0x78, 0x63, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x49, 0x64, 0x12, 0x26, 0x0a, 0x0e,
	0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x57, 0x6f, 0x72, 0x6b, 0x65, 0x72, 0x49, 0x64, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0e, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x57, 0x6f, 0x72, 0x6b,
	0x65, 0x72, 0x49, 0x64, 0x12, 0x10, 0x0a, 0x03, 0x65, 0x6f, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x03, 0x65, 0x6f, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61,
	0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6c, 0x6f, 0x61, 0x64,
	0x22, 0x37, 0x0a, 0x0b, 0x4d, 0x44, 0x65, 0x6c, 0x69, 0x76, 0x65, 0x72, 0x41, 0x63, 0x6b, 0x12,
	0x12, 0x0a, 0x04, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x74,
	0x69, 0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x32, 0x49, 0x0a, 0x0f, 0x45, 0x78, 0x63,
	0x68, 0x61, 0x6e, 0x67, 0x65, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x36, 0x0a, 0x07,
	0x44, 0x65, 0x6c, 0x69, 0x76, 0x65, 0x72, 0x12, 0x15, 0x2e, 0x72, 0x70, 0x63, 0x2e, 0x4d, 0x45,
	0x78, 0x63, 0x68, 0x61, 0x6e, 0x67, 0x65, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x1a, 0x10,
	0x2e, 0x72, 0x70, 0x63, 0x2e, 0x4d, 0x44, 0x65, 0x6c, 0x69, 0x76, 0x65, 0x72, 0x41, 0x63, 0x6b,
	0x22, 0x00, 0x28, 0x01, 0x42, 0x07, 0x5a, 0x05, 0x2e, 0x3b, 0x72, 0x70, 0x63, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_s_exchange_proto_rawDescOnce sync.Once
	file_s_exchange_proto_rawDescData = file_s_exchange_proto_rawDesc
)

func file_s_exchange_proto_rawDescGZIP() []byte {
	file_s_exchange_proto_rawDescOnce.Do(func() {
		file_s_exchange_proto_rawDescData = protoimpl.X.CompressGZIP(file_s_exchange_proto_rawDescData)
	})
	return file_s_exchange_proto_rawDescData
}

var file_s_exchange_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_s_exchange_proto_goTypes = []interface{}{
	(*MExchangeMessage)(nil), // 0: rpc.MExchangeMessage
	(*MDeliverAck)(nil),      // 1: rpc.MDeliverAck
}
var file_s_exchange_proto_depIdxs = []int32{
	0, // 0: rpc.ExchangeService.Deliver:input_type -> rpc.MExchangeMessage
	1, // 1: rpc.ExchangeService.Deliver:output_type -> rpc.MDeliverAck
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_s_exchange_proto_init() }
func file_s_exchange_proto_init() {
	if File_s_exchange_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_s_exchange_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MExchangeMessage); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_s_exchange_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MDeliverAck); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_s_exchange_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_s_exchange_proto_goTypes,
		DependencyIndexes: file_s_exchange_proto_depIdxs,
		MessageInfos:      file_s_exchange_proto_msgTypes,
	}.Build()
	File_s_exchange_proto = out.File
	file_s_exchange_proto_rawDesc = nil
	file_s_exchange_proto_goTypes = nil
	file_s_exchange_proto_depIdxs = nil
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConnInterface

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion6

// ExchangeServiceClient is the client API for ExchangeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://godoc.org/google.golang.org/grpc#ClientConn.NewStream.
type ExchangeServiceClient interface {
	Deliver(ctx context.Context, opts ...grpc.CallOption) (ExchangeService_DeliverClient, error)
}

type exchangeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExchangeServiceClient(cc grpc.ClientConnInterface) ExchangeServiceClient {
	return &exchangeServiceClient{cc}
}

func (c *exchangeServiceClient) Deliver(ctx context.Context, opts ...grpc.CallOption) (ExchangeService_DeliverClient, error) {
	stream, err := c.cc.NewStream(ctx, &_ExchangeService_serviceDesc.Streams[0], "/rpc.ExchangeService/Deliver", opts...)
	if err != nil {
		return nil, err
	}
	x := &exchangeServiceDeliverClient{stream}
	return x, nil
}

type ExchangeService_DeliverClient interface {
	Send(*MExchangeMessage) error
	CloseAndRecv() (*MDeliverAck, error)
	grpc.ClientStream
}

type exchangeServiceDeliverClient struct {
	grpc.ClientStream
}

func (x *exchangeServiceDeliverClient) Send(m *MExchangeMessage) error {
	return x.ClientStream.SendMsg(m)
}

func (x *exchangeServiceDeliverClient) CloseAndRecv() (*MDeliverAck, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(MDeliverAck)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ExchangeServiceServer is the server API for ExchangeService service.
type ExchangeServiceServer interface {
	Deliver(ExchangeService_DeliverServer) error
}

// UnimplementedExchangeServiceServer can be embedded to have forward compatible implementations.
type UnimplementedExchangeServiceServer struct {
}

func (*UnimplementedExchangeServiceServer) Deliver(ExchangeService_DeliverServer) error {
	return status.Errorf(codes.Unimplemented, "method Deliver not implemented")
}

func RegisterExchangeServiceServer(s *grpc.Server, srv ExchangeServiceServer) {
	s.RegisterService(&_ExchangeService_serviceDesc, srv)
}

func _ExchangeService_Deliver_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(ExchangeServiceServer).Deliver(&exchangeServiceDeliverServer{stream})
}

type ExchangeService_DeliverServer interface {
	SendAndClose(*MDeliverAck) error
	Recv() (*MExchangeMessage, error)
	grpc.ServerStream
}

type exchangeServiceDeliverServer struct {
	grpc.ServerStream
}

func (x *exchangeServiceDeliverServer) SendAndClose(m *MDeliverAck) error {
	return x.ServerStream.SendMsg(m)
}

func (x *exchangeServiceDeliverServer) Recv() (*MExchangeMessage, error) {
	m := new(MExchangeMessage)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _ExchangeService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "rpc.ExchangeService",
	HandlerType: (*ExchangeServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Deliver",
			Handler:       _ExchangeService_Deliver_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "s_exchange.proto",
}
