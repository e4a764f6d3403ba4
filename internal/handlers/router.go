package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"accounting-service/internal/config"
	"accounting-service/internal/repositories"
	"accounting-service/internal/services"
)

func SetupRouter(db *sql.DB, cfg *config.Config) *mux.Router {
	accountRepo := repositories.NewAccountRepository(db)
	balanceRepo := repositories.NewBalanceRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	voucherRepo := repositories.NewVoucherRepository(db)

	balanceService := services.NewBalanceService(db, balanceRepo)
	reportService := services.NewReportService(db, reportRepo)
	voucherService := services.NewVoucherService(db, voucherRepo)

	accountHandler := NewAccountHandler(accountRepo)
	balanceHandler := NewBalanceHandler(balanceService)
	reportHandler := NewReportHandler(reportService)
	voucherHandler := NewVoucherHandler(voucherService)

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()

	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)

	// Chart of accounts. The leaf listing registers before the {code}
	// lookup so "leaf" is never treated as an account code.
	api.HandleFunc("/accounts/leaf", accountHandler.ListLeafAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts", accountHandler.ListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts", accountHandler.CreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{code}", accountHandler.GetAccount).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{code}", accountHandler.UpdateAccount).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{code}", accountHandler.DeleteAccount).Methods(http.MethodDelete)

	// Opening balances
	api.HandleFunc("/account_balances", balanceHandler.GetBalances).Methods(http.MethodGet)
	api.HandleFunc("/account_balances", balanceHandler.SaveBalances).Methods(http.MethodPost)

	// Reports
	api.HandleFunc("/reports/generate_summary", reportHandler.GenerateSummary).Methods(http.MethodPost)
	api.HandleFunc("/reports/account_summary", reportHandler.AccountSummary).Methods(http.MethodGet)
	api.HandleFunc("/reports/balance_sheet", reportHandler.BalanceSheet).Methods(http.MethodGet)
	api.HandleFunc("/reports/income_statement", reportHandler.IncomeStatement).Methods(http.MethodGet)
	api.HandleFunc("/reports/cash_flow_statement", reportHandler.CashFlowStatement).Methods(http.MethodGet)
	api.HandleFunc("/reports/trial_balance", reportHandler.TrialBalance).Methods(http.MethodGet)

	// Vouchers
	api.HandleFunc("/vouchers/next_number", voucherHandler.NextNumber).Methods(http.MethodGet)
	api.HandleFunc("/vouchers", voucherHandler.ListVouchers).Methods(http.MethodGet)
	api.HandleFunc("/vouchers", voucherHandler.CreateVoucher).Methods(http.MethodPost)
	api.HandleFunc("/vouchers/{id:[0-9]+}", voucherHandler.GetVoucher).Methods(http.MethodGet)
	api.HandleFunc("/vouchers/{id:[0-9]+}", voucherHandler.DeleteVoucher).Methods(http.MethodDelete)

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "healthy",
	}
	respondWithJSON(w, http.StatusOK, response)
}
