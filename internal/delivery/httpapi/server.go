package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/usecase/approval"
	"github.com/openmazad/auction-service/internal/usecase/bidding"
	"github.com/openmazad/auction-service/internal/usecase/lifecycle"
	"github.com/openmazad/auction-service/internal/usecase/settlement"
)

// callerHeader identifies the acting user. Authentication itself happens
// upstream; the gateway injects the verified identity here.
const callerHeader = "X-User-ID"

type Server struct {
	addr string

	auctionRepo domain.AuctionRepository
	bidding     bidding.BiddingUsecase
	lifecycle   lifecycle.LifecycleUsecase
	settlement  settlement.SettlementUsecase
	approval    approval.ApprovalUsecase

	srv *http.Server
}

func NewServer(
	addr string,
	auctionRepo domain.AuctionRepository,
	biddingUC bidding.BiddingUsecase,
	lifecycleUC lifecycle.LifecycleUsecase,
	settlementUC settlement.SettlementUsecase,
	approvalUC approval.ApprovalUsecase,
) *Server {
	s := &Server{
		addr:        addr,
		auctionRepo: auctionRepo,
		bidding:     biddingUC,
		lifecycle:   lifecycleUC,
		settlement:  settlementUC,
		approval:    approvalUC,
	}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

func (s *Server) router() http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)

	mux.Get("/livez", s.handleLiveness)

	mux.Route("/api", func(r chi.Router) {
		r.Post("/auctions", s.handleCreateAuction)
		r.Get("/auctions/{auctionID}", s.handleGetAuction)
		r.Post("/auctions/{auctionID}/bids", s.handlePlaceBid)
		r.Post("/auctions/{auctionID}/force-end", s.handleForceEnd)
		r.Post("/auctions/{auctionID}/cancel", s.handleCancelAuction)
		r.Delete("/auctions/{auctionID}", s.handleDeleteAuction)

		r.Get("/auctions/{auctionID}/amount-due", s.handleAmountDue)
		r.Post("/auctions/{auctionID}/payments/participation", s.handleSubmitParticipationPayment)
		r.Post("/auctions/{auctionID}/payments/winner", s.handleSubmitWinnerPayment)
		r.Post("/payments/{paymentID}/approve", s.handleApprovePayment)
		r.Post("/payments/{paymentID}/reject", s.handleRejectPayment)

		r.Post("/requests", s.handleSubmitRequest)
		r.Post("/requests/{requestID}/approve", s.handleApproveRequest)
		r.Post("/requests/{requestID}/reject", s.handleRejectRequest)

		r.Post("/lifecycle/sweep", s.handleSweep)
	})

	return mux
}

func (s *Server) RunInBackground() {
	go func() {
		slog.Info("http server started", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err.Error())
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"alive"}`))
}
