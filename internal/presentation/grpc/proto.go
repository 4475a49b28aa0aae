package grpc

// proto.go defines the gRPC server interface derived from
// finwallet/installments/v1/installments.proto. This file serves as a
// stand-in for buf-generated code. Once `buf generate` is run, replace this
// file with the import from
// github.com/finwallet/api/gen/go/finwallet/installments/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Message types. Monetary values travel as decimal strings; dates as RFC3339.
// ---------------------------------------------------------------------------

type Plan struct {
	Id                    string `json:"id"`
	Description           string `json:"description"`
	TotalAmount           string `json:"total_amount"`
	TotalInstallments     int32  `json:"total_installments"`
	MonthlyPayment        string `json:"monthly_payment"`
	InterestRate          string `json:"interest_rate"`
	StartDate             string `json:"start_date"`
	NextPaymentDate       string `json:"next_payment_date"`
	RemainingInstallments int32  `json:"remaining_installments"`
	Status                string `json:"status"`
	CategoryId            int32  `json:"category_id,omitempty"`
	CreatedAt             string `json:"created_at"`
	UpdatedAt             string `json:"updated_at"`
}

type CreatePlanRequest struct {
	Description       string `json:"description"`
	TotalAmount       string `json:"total_amount"`
	TotalInstallments int32  `json:"total_installments"`
	InterestRate      string `json:"interest_rate"`
	FirstPaymentDate  string `json:"first_payment_date"`
	CategoryId        int32  `json:"category_id,omitempty"`
}

type CreatePlanResponse struct {
	Plan *Plan `json:"plan"`
}

type GetPlanRequest struct {
	PlanId string `json:"plan_id"`
}

type GetPlanResponse struct {
	Plan *Plan `json:"plan"`
}

type ListPlansRequest struct {
	ActiveOnly bool `json:"active_only"`
}

type ListPlansResponse struct {
	Plans []*Plan `json:"plans"`
}

type ListPlansDueRequest struct {
	AsOf string `json:"as_of,omitempty"`
}

type ListPlansDueResponse struct {
	Plans []*Plan `json:"plans"`
}

type UpdatePlanRequest struct {
	PlanId          string `json:"plan_id"`
	Description     string `json:"description"`
	InterestRate    string `json:"interest_rate"`
	NextPaymentDate string `json:"next_payment_date"`
	CategoryId      int32  `json:"category_id,omitempty"`
}

type UpdatePlanResponse struct {
	Plan *Plan `json:"plan"`
}

type DeletePlanRequest struct {
	PlanId string `json:"plan_id"`
}

type DeletePlanResponse struct{}

type ProcessPaymentRequest struct {
	PlanId      string `json:"plan_id"`
	AccountId   string `json:"account_id"`
	PaymentDate string `json:"payment_date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type ProcessPaymentResponse struct {
	PlanId                string `json:"plan_id"`
	AmountPaid            string `json:"amount_paid"`
	RemainingInstallments int32  `json:"remaining_installments"`
	NextPaymentDate       string `json:"next_payment_date"`
	PlanStatus            string `json:"plan_status"`
	AccountBalance        string `json:"account_balance"`
}

type RateInfo struct {
	CategoryId   int32  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Rate         string `json:"rate"`
	Explanation  string `json:"explanation"`
	Source       string `json:"source"`
	IsMarketRate bool   `json:"is_market_rate"`
}

type SuggestRateRequest struct {
	CategoryId int32 `json:"category_id"`
}

type SuggestRateResponse struct {
	Rate *RateInfo `json:"rate"`
}

type ListRatesRequest struct{}

type ListRatesResponse struct {
	Rates []*RateInfo `json:"rates"`
}

type CompareRateRequest struct {
	CategoryId int32  `json:"category_id"`
	UserRate   string `json:"user_rate"`
}

type CompareRateResponse struct {
	CategoryId   int32  `json:"category_id"`
	CategoryName string `json:"category_name"`
	MarketRate   string `json:"market_rate"`
	UserRate     string `json:"user_rate"`
	Difference   string `json:"difference"`
	IsGoodDeal   bool   `json:"is_good_deal"`
	Summary      string `json:"summary"`
}

// ---------------------------------------------------------------------------
// Service interface and registration
// ---------------------------------------------------------------------------

// InstallmentServiceServer is the server API for InstallmentService.
// It mirrors the proto-generated interface from
// finwallet.installments.v1.InstallmentService.
type InstallmentServiceServer interface {
	CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error)
	GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error)
	ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error)
	ListPlansDue(context.Context, *ListPlansDueRequest) (*ListPlansDueResponse, error)
	UpdatePlan(context.Context, *UpdatePlanRequest) (*UpdatePlanResponse, error)
	DeletePlan(context.Context, *DeletePlanRequest) (*DeletePlanResponse, error)
	ProcessPayment(context.Context, *ProcessPaymentRequest) (*ProcessPaymentResponse, error)
	SuggestRate(context.Context, *SuggestRateRequest) (*SuggestRateResponse, error)
	ListRates(context.Context, *ListRatesRequest) (*ListRatesResponse, error)
	CompareRate(context.Context, *CompareRateRequest) (*CompareRateResponse, error)
	mustEmbedUnimplementedInstallmentServiceServer()
}

// UnimplementedInstallmentServiceServer provides forward-compatible default implementations.
type UnimplementedInstallmentServiceServer struct{}

func (UnimplementedInstallmentServiceServer) CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePlan not implemented")
}
func (UnimplementedInstallmentServiceServer) GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPlan not implemented")
}
func (UnimplementedInstallmentServiceServer) ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPlans not implemented")
}
func (UnimplementedInstallmentServiceServer) ListPlansDue(context.Context, *ListPlansDueRequest) (*ListPlansDueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPlansDue not implemented")
}
func (UnimplementedInstallmentServiceServer) UpdatePlan(context.Context, *UpdatePlanRequest) (*UpdatePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePlan not implemented")
}
func (UnimplementedInstallmentServiceServer) DeletePlan(context.Context, *DeletePlanRequest) (*DeletePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePlan not implemented")
}
func (UnimplementedInstallmentServiceServer) ProcessPayment(context.Context, *ProcessPaymentRequest) (*ProcessPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessPayment not implemented")
}
func (UnimplementedInstallmentServiceServer) SuggestRate(context.Context, *SuggestRateRequest) (*SuggestRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestRate not implemented")
}
func (UnimplementedInstallmentServiceServer) ListRates(context.Context, *ListRatesRequest) (*ListRatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRates not implemented")
}
func (UnimplementedInstallmentServiceServer) CompareRate(context.Context, *CompareRateRequest) (*CompareRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareRate not implemented")
}
func (UnimplementedInstallmentServiceServer) mustEmbedUnimplementedInstallmentServiceServer() {}

// RegisterInstallmentServiceServer registers the InstallmentServiceServer with the gRPC server.
func RegisterInstallmentServiceServer(s *grpclib.Server, srv InstallmentServiceServer) {
	s.RegisterService(&_InstallmentService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _InstallmentService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "finwallet.installments.v1.InstallmentService",
	HandlerType: (*InstallmentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreatePlan", Handler: _InstallmentService_CreatePlan_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetPlan", Handler: _InstallmentService_GetPlan_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListPlans", Handler: _InstallmentService_ListPlans_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListPlansDue", Handler: _InstallmentService_ListPlansDue_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "UpdatePlan", Handler: _InstallmentService_UpdatePlan_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "DeletePlan", Handler: _InstallmentService_DeletePlan_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ProcessPayment", Handler: _InstallmentService_ProcessPayment_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SuggestRate", Handler: _InstallmentService_SuggestRate_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListRates", Handler: _InstallmentService_ListRates_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "CompareRate", Handler: _InstallmentService_CompareRate_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_CreatePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).CreatePlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/CreatePlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).CreatePlan(ctx, req.(*CreatePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_GetPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).GetPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/GetPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).GetPlan(ctx, req.(*GetPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_ListPlans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPlansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).ListPlans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/ListPlans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).ListPlans(ctx, req.(*ListPlansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_ListPlansDue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPlansDueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).ListPlansDue(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/ListPlansDue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).ListPlansDue(ctx, req.(*ListPlansDueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_UpdatePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).UpdatePlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/UpdatePlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).UpdatePlan(ctx, req.(*UpdatePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_DeletePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).DeletePlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/DeletePlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).DeletePlan(ctx, req.(*DeletePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_ProcessPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).ProcessPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/ProcessPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).ProcessPayment(ctx, req.(*ProcessPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_SuggestRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).SuggestRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/SuggestRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).SuggestRate(ctx, req.(*SuggestRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_ListRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).ListRates(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/ListRates",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).ListRates(ctx, req.(*ListRatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _InstallmentService_CompareRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstallmentServiceServer).CompareRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finwallet.installments.v1.InstallmentService/CompareRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstallmentServiceServer).CompareRate(ctx, req.(*CompareRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}
