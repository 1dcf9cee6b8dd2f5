package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/usecase/approval"
	"github.com/openmazad/auction-service/internal/usecase/bidding"
	"github.com/openmazad/auction-service/internal/usecase/settlement"
)

func (s *Server) handleCreateAuction(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := caller(w, r)
	if !ok {
		return
	}
	var body submitAuctionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	auction, err := s.approval.CreateAuction(&approval.SubmitRequestInput{
		SellerID:      sellerID,
		Type:          body.Type,
		Title:         body.Title,
		Description:   body.Description,
		StartingPrice: body.StartingPrice,
		BidIncrement:  body.BidIncrement,
		MinimumPrice:  body.MinimumPrice,
		ReservePrice:  body.ReservePrice,
		StartDate:     body.StartDate,
		EndDate:       body.EndDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuctionResponse(auction))
}

func (s *Server) handleGetAuction(w http.ResponseWriter, r *http.Request) {
	auction, err := s.auctionRepo.GetAuctionByID(chi.URLParam(r, "auctionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	// Clients read between scheduler ticks, so the visible status is always
	// derived from the clock, never the stored column.
	auction.Status = auction.DeriveStatus(time.Now())
	writeJSON(w, http.StatusOK, toAuctionResponse(auction))
}

func (s *Server) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}
	var body placeBidRequest
	if !decodeBody(w, r, &body) {
		return
	}
	out, err := s.bidding.PlaceBid(&bidding.PlaceBidInput{
		AuctionID: chi.URLParam(r, "auctionID"),
		UserID:    userID,
		Amount:    body.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuctionResponse(out.Auction))
}

func (s *Server) handleForceEnd(w http.ResponseWriter, r *http.Request) {
	callerID, ok := caller(w, r)
	if !ok {
		return
	}
	auction, err := s.lifecycle.ForceEnd(r.Context(), chi.URLParam(r, "auctionID"), callerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(auction))
}

func (s *Server) handleCancelAuction(w http.ResponseWriter, r *http.Request) {
	callerID, ok := caller(w, r)
	if !ok {
		return
	}
	auction, err := s.lifecycle.CancelAuction(chi.URLParam(r, "auctionID"), callerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(auction))
}

func (s *Server) handleDeleteAuction(w http.ResponseWriter, r *http.Request) {
	adminID, ok := caller(w, r)
	if !ok {
		return
	}
	auction, err := s.lifecycle.DeleteAuction(chi.URLParam(r, "auctionID"), adminID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(auction))
}

func (s *Server) handleAmountDue(w http.ResponseWriter, r *http.Request) {
	auctionID := chi.URLParam(r, "auctionID")
	due, err := s.settlement.AmountDueForAuction(auctionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, amountDueResponse{AuctionID: auctionID, AmountDue: due})
}

func (s *Server) handleSubmitParticipationPayment(w http.ResponseWriter, r *http.Request) {
	s.submitPayment(w, r, s.settlement.SubmitParticipationPayment)
}

func (s *Server) handleSubmitWinnerPayment(w http.ResponseWriter, r *http.Request) {
	s.submitPayment(w, r, s.settlement.SubmitWinnerPayment)
}

func (s *Server) submitPayment(
	w http.ResponseWriter,
	r *http.Request,
	submit func(*settlement.SubmitPaymentInput) (*domain.PaymentRequest, error),
) {
	userID, ok := caller(w, r)
	if !ok {
		return
	}
	var body submitPaymentRequest
	if !decodeBody(w, r, &body) {
		return
	}
	payment, err := submit(&settlement.SubmitPaymentInput{
		AuctionID:     chi.URLParam(r, "auctionID"),
		UserID:        userID,
		Amount:        body.Amount,
		Method:        body.Method,
		ScreenshotURL: body.ScreenshotURL,
		TransactionID: body.TransactionID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (s *Server) handleApprovePayment(w http.ResponseWriter, r *http.Request) {
	s.reviewPayment(w, r, s.settlement.ApprovePayment)
}

func (s *Server) handleRejectPayment(w http.ResponseWriter, r *http.Request) {
	s.reviewPayment(w, r, s.settlement.RejectPayment)
}

func (s *Server) reviewPayment(
	w http.ResponseWriter,
	r *http.Request,
	review func(*settlement.ReviewPaymentInput) (*domain.PaymentRequest, error),
) {
	adminID, ok := caller(w, r)
	if !ok {
		return
	}
	var body reviewRequest
	if !decodeBody(w, r, &body) {
		return
	}
	payment, err := review(&settlement.ReviewPaymentInput{
		PaymentID: chi.URLParam(r, "paymentID"),
		AdminID:   adminID,
		Notes:     body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := caller(w, r)
	if !ok {
		return
	}
	var body submitAuctionRequest
	if !decodeBody(w, r, &body) {
		return
	}
	req, err := s.approval.SubmitRequest(&approval.SubmitRequestInput{
		SellerID:      sellerID,
		Type:          body.Type,
		Title:         body.Title,
		Description:   body.Description,
		StartingPrice: body.StartingPrice,
		BidIncrement:  body.BidIncrement,
		MinimumPrice:  body.MinimumPrice,
		ReservePrice:  body.ReservePrice,
		StartDate:     body.StartDate,
		EndDate:       body.EndDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(req))
}

func (s *Server) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	adminID, ok := caller(w, r)
	if !ok {
		return
	}
	var body reviewRequest
	if !decodeBody(w, r, &body) {
		return
	}
	auction, err := s.approval.Approve(&approval.ReviewRequestInput{
		RequestID: chi.URLParam(r, "requestID"),
		AdminID:   adminID,
		Notes:     body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(auction))
}

func (s *Server) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	adminID, ok := caller(w, r)
	if !ok {
		return
	}
	var body reviewRequest
	if !decodeBody(w, r, &body) {
		return
	}
	req, err := s.approval.Reject(&approval.ReviewRequestInput{
		RequestID: chi.URLParam(r, "requestID"),
		AdminID:   adminID,
		Notes:     body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	if _, ok := caller(w, r); !ok {
		return
	}
	if err := s.lifecycle.SweepOnce(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "swept"})
}
