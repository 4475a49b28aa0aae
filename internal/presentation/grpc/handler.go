package grpc

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finwallet/installment-service/internal/application/dto"
	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/fault"
	"github.com/finwallet/installment-service/pkg/auth"
)

// Handler adapts the gRPC surface onto the application use cases. It owns
// request parsing, claim extraction and the fault-to-status translation;
// everything else is delegated.
type Handler struct {
	UnimplementedInstallmentServiceServer

	createPlan     *usecase.CreatePlanUseCase
	getPlan        *usecase.GetPlanUseCase
	listPlans      *usecase.ListPlansUseCase
	listPlansDue   *usecase.ListPlansDueUseCase
	updatePlan     *usecase.UpdatePlanUseCase
	deletePlan     *usecase.DeletePlanUseCase
	processPayment *usecase.ProcessPaymentUseCase
	suggestRate    *usecase.SuggestRateUseCase
	listRates      *usecase.ListRatesUseCase
	compareRate    *usecase.CompareRateUseCase
}

// NewHandler wires the use cases into the gRPC handler.
func NewHandler(
	createPlan *usecase.CreatePlanUseCase,
	getPlan *usecase.GetPlanUseCase,
	listPlans *usecase.ListPlansUseCase,
	listPlansDue *usecase.ListPlansDueUseCase,
	updatePlan *usecase.UpdatePlanUseCase,
	deletePlan *usecase.DeletePlanUseCase,
	processPayment *usecase.ProcessPaymentUseCase,
	suggestRate *usecase.SuggestRateUseCase,
	listRates *usecase.ListRatesUseCase,
	compareRate *usecase.CompareRateUseCase,
) *Handler {
	return &Handler{
		createPlan:     createPlan,
		getPlan:        getPlan,
		listPlans:      listPlans,
		listPlansDue:   listPlansDue,
		updatePlan:     updatePlan,
		deletePlan:     deletePlan,
		processPayment: processPayment,
		suggestRate:    suggestRate,
		listRates:      listRates,
		compareRate:    compareRate,
	}
}

func (h *Handler) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*CreatePlanResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	totalAmount, err := parseDecimal(req.TotalAmount, "total_amount")
	if err != nil {
		return nil, err
	}
	interestRate, err := parseDecimal(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}
	firstPaymentDate, err := parseDate(req.FirstPaymentDate, "first_payment_date")
	if err != nil {
		return nil, err
	}

	resp, err := h.createPlan.Execute(ctx, dto.CreatePlanRequest{
		OwnerID:           ownerID,
		Description:       req.Description,
		TotalAmount:       totalAmount,
		TotalInstallments: int(req.TotalInstallments),
		InterestRate:      interestRate,
		FirstPaymentDate:  firstPaymentDate,
		CategoryID:        categoryID(req.CategoryId),
	})
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &CreatePlanResponse{Plan: toPlanMessage(resp)}, nil
}

func (h *Handler) GetPlan(ctx context.Context, req *GetPlanRequest) (*GetPlanResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.getPlan.Execute(ctx, dto.GetPlanRequest{OwnerID: ownerID, PlanID: req.PlanId})
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &GetPlanResponse{Plan: toPlanMessage(resp)}, nil
}

func (h *Handler) ListPlans(ctx context.Context, req *ListPlansRequest) (*ListPlansResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := h.listPlans.Execute(ctx, dto.ListPlansRequest{OwnerID: ownerID, ActiveOnly: req.ActiveOnly})
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &ListPlansResponse{Plans: toPlanMessages(plans)}, nil
}

// ListPlansDue is an operational endpoint for the payment scheduler; it spans
// all owners and therefore requires the admin role.
func (h *Handler) ListPlansDue(ctx context.Context, req *ListPlansDueRequest) (*ListPlansDueResponse, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing authentication claims")
	}
	if !claims.HasRole(auth.RoleAdmin) && !claims.HasRole(auth.RoleAPIClient) {
		return nil, status.Error(codes.PermissionDenied, "listing due plans requires an operational role")
	}

	var asOf time.Time
	if req.AsOf != "" {
		var err error
		asOf, err = parseDate(req.AsOf, "as_of")
		if err != nil {
			return nil, err
		}
	}

	plans, err := h.listPlansDue.Execute(ctx, dto.ListPlansDueRequest{AsOf: asOf})
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &ListPlansDueResponse{Plans: toPlanMessages(plans)}, nil
}

func (h *Handler) UpdatePlan(ctx context.Context, req *UpdatePlanRequest) (*UpdatePlanResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	interestRate, err := parseDecimal(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}
	nextPaymentDate, err := parseDate(req.NextPaymentDate, "next_payment_date")
	if err != nil {
		return nil, err
	}

	resp, err := h.updatePlan.Execute(ctx, dto.UpdatePlanRequest{
		OwnerID:         ownerID,
		PlanID:          req.PlanId,
		Description:     req.Description,
		InterestRate:    interestRate,
		NextPaymentDate: nextPaymentDate,
		CategoryID:      categoryID(req.CategoryId),
	})
	if err != nil {
		return nil, statusFromErr(err)
	}
	return &UpdatePlanResponse{Plan: toPlanMessage(resp)}, nil
}

func (h *Handler) DeletePlan(ctx context.Context, req *DeletePlanRequest) (*DeletePlanResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.deletePlan.Execute(ctx, dto.DeletePlanRequest{OwnerID: ownerID, PlanID: req.PlanId}); err != nil {
		return nil, statusFromErr(err)
	}
	return &DeletePlanResponse{}, nil
}

func (h *Handler) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*ProcessPaymentResponse, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		paymentDate, err = parseDate(req.PaymentDate, "payment_date")
		if err != nil {
			return nil, err
		}
	}

	resp, err := h.processPayment.Execute(ctx, dto.ProcessPaymentRequest{
		OwnerID:     ownerID,
		PlanID:      req.PlanId,
		AccountID:   req.AccountId,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, statusFromErr(err)
	}

	return &ProcessPaymentResponse{
		PlanId:                resp.PlanID,
		AmountPaid:            resp.AmountPaid.StringFixed(2),
		RemainingInstallments: int32(resp.RemainingInstallments),
		NextPaymentDate:       resp.NextPaymentDate.UTC().Format(time.RFC3339),
		PlanStatus:            resp.PlanStatus,
		AccountBalance:        resp.AccountBalance.StringFixed(2),
	}, nil
}

func (h *Handler) SuggestRate(ctx context.Context, req *SuggestRateRequest) (*SuggestRateResponse, error) {
	resp := h.suggestRate.Execute(ctx, dto.SuggestRateRequest{CategoryID: int(req.CategoryId)})
	return &SuggestRateResponse{Rate: toRateMessage(resp)}, nil
}

func (h *Handler) ListRates(ctx context.Context, _ *ListRatesRequest) (*ListRatesResponse, error) {
	rates := h.listRates.Execute(ctx)

	out := make([]*RateInfo, 0, len(rates))
	for _, r := range rates {
		out = append(out, toRateMessage(r))
	}
	// Map iteration order is random; present the catalog sorted by category.
	sortRates(out)
	return &ListRatesResponse{Rates: out}, nil
}

func (h *Handler) CompareRate(ctx context.Context, req *CompareRateRequest) (*CompareRateResponse, error) {
	userRate, err := parseDecimal(req.UserRate, "user_rate")
	if err != nil {
		return nil, err
	}

	resp := h.compareRate.Execute(ctx, dto.CompareRateRequest{
		CategoryID: int(req.CategoryId),
		UserRate:   userRate,
	})

	return &CompareRateResponse{
		CategoryId:   int32(resp.CategoryID),
		CategoryName: resp.CategoryName,
		MarketRate:   resp.MarketRate.String(),
		UserRate:     resp.UserRate.String(),
		Difference:   resp.Difference.String(),
		IsGoodDeal:   resp.IsGoodDeal,
		Summary:      resp.Summary,
	}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ownerFromContext(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing authentication claims")
	}
	return claims.UserID.String(), nil
}

func parseDecimal(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, raw)
	}
	return d, nil
}

func parseDate(raw, field string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %q", field, raw)
	}
	return t, nil
}

func categoryID(id int32) *int {
	if id == 0 {
		return nil
	}
	v := int(id)
	return &v
}

func toPlanMessage(p dto.PlanResponse) *Plan {
	msg := &Plan{
		Id:                    p.ID,
		Description:           p.Description,
		TotalAmount:           p.TotalAmount.StringFixed(2),
		TotalInstallments:     int32(p.TotalInstallments),
		MonthlyPayment:        p.MonthlyPayment.StringFixed(2),
		InterestRate:          p.InterestRate.String(),
		StartDate:             p.StartDate.UTC().Format(time.RFC3339),
		NextPaymentDate:       p.NextPaymentDate.UTC().Format(time.RFC3339),
		RemainingInstallments: int32(p.RemainingInstallments),
		Status:                p.Status,
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.CategoryID != nil {
		msg.CategoryId = int32(*p.CategoryID)
	}
	return msg
}

func toPlanMessages(plans []dto.PlanResponse) []*Plan {
	out := make([]*Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanMessage(p))
	}
	return out
}

func toRateMessage(r dto.RateResponse) *RateInfo {
	return &RateInfo{
		CategoryId:   int32(r.CategoryID),
		CategoryName: r.CategoryName,
		Rate:         r.Rate.String(),
		Explanation:  r.Explanation,
		Source:       r.Source,
		IsMarketRate: r.IsMarketRate,
	}
}

func sortRates(rates []*RateInfo) {
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].CategoryId < rates[j].CategoryId
	})
}

// statusFromErr translates domain faults into gRPC status codes. Anything the
// fault package does not classify surfaces as Internal.
func statusFromErr(err error) error {
	var f *fault.Fault
	if !errors.As(err, &f) {
		return status.Error(codes.Internal, err.Error())
	}

	switch f.Kind() {
	case fault.KindValidation:
		return status.Error(codes.InvalidArgument, f.Error())
	case fault.KindNotFound:
		return status.Error(codes.NotFound, f.Error())
	case fault.KindInvalidState, fault.KindInsufficientFunds:
		return status.Error(codes.FailedPrecondition, f.Error())
	default:
		return status.Error(codes.Internal, f.Error())
	}
}
