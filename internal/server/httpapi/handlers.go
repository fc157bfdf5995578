package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/presale/internal/api"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/server/models"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.RootResponse{Message: "Presale API is running", Version: Version})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy", Timestamp: s.now().UTC()})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	password := []byte(req.Password)
	defer common.WipeByteArray(password)

	user, err := s.users.Register(r.Context(), req.Email, password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusBadRequest, detailEmailTaken)
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.internalError(w, r, err)
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusOK, api.RegisterResponse{Message: "User registered successfully", UserID: user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	password := []byte(req.Password)
	defer common.WipeByteArray(password)

	token, user, err := s.users.Login(r.Context(), req.Email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, detailBadLogin)
		case errors.Is(err, common.ErrorNotVerified):
			writeError(w, http.StatusUnauthorized, detailNotVerified)
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: "bearer", User: userToAPI(user)})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userToAPI(userFrom(r.Context())))
}

func (s *Server) handleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req api.PurchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := userFrom(r.Context())
	p, err := s.purchases.Create(r.Context(), user.ID, &models.PurchaseInput{
		CryptoType:      req.CryptoType,
		AmountCrypto:    req.AmountCrypto,
		AmountUSD:       req.AmountUSD,
		TokensPurchased: req.TokensPurchased,
		WalletAddress:   req.WalletAddress,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Purchase recorded", "purchase_id", p.ID, "user_id", user.ID, "crypto_type", p.CryptoType)
	writeJSON(w, http.StatusOK, purchaseToAPI(p))
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	h, err := s.purchases.History(r.Context(), userFrom(r.Context()).ID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := api.PurchasesResponse{
		Purchases: make([]api.Purchase, 0, len(h.Purchases)),
		Stats: api.Stats{
			TotalTokens:   h.Totals.Tokens,
			TotalInvested: h.Totals.AmountUSD,
			PurchaseCount: h.Totals.Count,
		},
	}
	for i := range h.Purchases {
		resp.Purchases = append(resp.Purchases, purchaseToAPI(&h.Purchases[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Dashboard(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := api.Dashboard{
		TotalUsers:      d.TotalUsers,
		TotalPurchases:  d.Totals.Count,
		TotalFunds:      d.Totals.AmountUSD,
		TotalTokens:     d.Totals.Tokens,
		RecentUsers:     make([]api.User, 0, len(d.RecentUsers)),
		RecentPurchases: make([]api.AdminPurchase, 0, len(d.RecentPurchases)),
	}
	for i := range d.RecentUsers {
		resp.RecentUsers = append(resp.RecentUsers, userToAPI(&d.RecentUsers[i]))
	}
	for i := range d.RecentPurchases {
		ap := &d.RecentPurchases[i]
		resp.RecentPurchases = append(resp.RecentPurchases, api.AdminPurchase{
			Purchase:  purchaseToAPI(&ap.Purchase),
			UserEmail: ap.UserEmail,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// userToAPI never exposes the password hash.
func userToAPI(u *models.User) api.User {
	return api.User{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		IsVerified: u.IsVerified,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

func purchaseToAPI(p *models.Purchase) api.Purchase {
	return api.Purchase{
		ID:              p.ID,
		UserID:          p.UserID,
		CryptoType:      p.CryptoType,
		AmountCrypto:    p.AmountCrypto,
		AmountUSD:       p.AmountUSD,
		TokensPurchased: p.TokensPurchased,
		WalletAddress:   p.WalletAddress,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}
