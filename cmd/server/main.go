package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/LuisBatalla/auto-admin-portal/internal/auth"
	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/handlers"
	"github.com/LuisBatalla/auto-admin-portal/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Info("Connected to MongoDB successfully")

	database := client.Database(db.DatabaseName())
	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	workOrders := &db.MongoWorkOrderCollection{Collection: database.Collection("work_orders")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	vehicleHandler := handlers.NewVehicleHandler(vehicles, workOrders)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrders, vehicles)
	invoiceHandler := handlers.NewInvoiceHandler(workOrders, vehicles)
	dashboardHandler := handlers.NewDashboardHandler(vehicles, workOrders)
	exportHandler := handlers.NewExportHandler(vehicles, workOrders)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("PUT /api/auth/profile", authHandler.UpdateProfile)
	mux.HandleFunc("POST /api/auth/password", authHandler.ChangePassword)
	mux.HandleFunc("/api/vehicles", vehicleHandler.List)
	mux.HandleFunc("POST /api/vehicles", vehicleHandler.Create)
	mux.HandleFunc("/api/vehicles/{id}", vehicleHandler.Get)
	mux.HandleFunc("POST /api/vehicles/{id}/archive", vehicleHandler.Archive)
	mux.HandleFunc("POST /api/vehicles/{id}/unarchive", vehicleHandler.Unarchive)
	mux.HandleFunc("/api/workorders", workOrderHandler.List)
	mux.HandleFunc("POST /api/workorders", workOrderHandler.Create)
	mux.HandleFunc("PUT /api/workorders/{id}/status", workOrderHandler.UpdateStatus)
	mux.HandleFunc("/api/invoices", invoiceHandler.List)
	mux.HandleFunc("/api/invoices/months", invoiceHandler.Months)
	mux.HandleFunc("/api/dashboard", dashboardHandler.Stats)
	mux.HandleFunc("/api/export", exportHandler.Download)

	handler := rateLimiter.RateLimit(120, 60)(authMiddleware.Authenticate(requestLogger(mux)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("HTTP server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// requestLogger logs each request with method, path and remote address.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}
