package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/auth"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/admin"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/adoption"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/booking"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/cart"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/contact"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/order"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/user"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/middlewares"
	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Addr         string
	DB           *sql.DB
	TokenManager *auth.TokenService
}

type server struct {
	*ServerConfig

	doneCh        chan struct{}   // used to signal internal go routines to shutdown
	internalSrvWG *sync.WaitGroup // used to wait for all internal go routines within individual routes to finish before shutting down the server.

	eventEngine  eventengine.SubscribeRegisterPublisher
	catalogStore *catalog.Store
	srv          *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	srv := &server{
		ServerConfig:  serverConfig,
		doneCh:        make(chan struct{}),
		internalSrvWG: &sync.WaitGroup{},
	}

	return srv
}

func (s *server) Run() {
	router := chi.NewRouter()

	// strip trailing slashes at the end of the url
	// e.g. /pets/pet-001/ -> /pets/pet-001
	router.Use(chimiddleware.StripSlashes)

	s.prep()

	router.Mount("/api/v1", s.v1Router()) // api version 1 subrouter

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	// start server and listen for [os.Signal] signals to graceful shutdown server.
	s.listenAndServe()
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			log.Printf("server started and is listening at port %s...\n", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen shutdown signals
			println()
			log.Println("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			log.Println("server has stopped receiving new requests")
			log.Println("waiting for all pending requests to finish....")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}
	log.Println("all pending requests completed!")

	log.Println("waiting for all internal pending go routines....")
	close(s.doneCh)
	s.internalSrvWG.Wait()
	log.Println("all internal go routines are done")

	log.Println("closing other resources...")
	if err := s.DB.Close(); err != nil {
		log.Println("server failed to close db for shutdown")
	}

	log.Println("server has been gracefully shutdown")
	os.Exit(0)
}

// prep prepares server dependencies needed for server to function
func (s *server) prep() {
	s.eventEngine = eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
		},
	)

	catalogStore, err := catalog.NewStore()
	if err != nil {
		log.Fatalf("failed to load catalog seed: %v", err)
	}
	s.catalogStore = catalogStore
}

func (s *server) v1Router() *chi.Mux {
	r := chi.NewRouter()

	// health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	//middleware
	middleware := middlewares.NewMiddleware(
		s.TokenManager,
	)

	// catalog feature
	catalogService := catalog.NewService(s.catalogStore)
	catalogHandler := catalog.NewHandler(catalogService)
	catalogHandler.RegisterRoutes(r)

	catalog.NewEventHandler(&catalog.HandlerEventsConfig{
		DoneCh:        s.doneCh,
		InternalSrvWG: s.internalSrvWG,
		EventEngine:   s.eventEngine,
		Store:         s.catalogStore,
	})

	// user feature
	userStore := user.NewStore(s.DB)
	userService := user.NewService(userStore)
	userHandler := user.NewHandler(userService, middleware)
	userHandler.RegisterRoutes(r)

	// cart feature
	cartManager := cart.NewManager()
	cartService := cart.NewService(cartManager, s.catalogStore)
	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterRoutes(r)

	// order feature
	orderStore := order.NewStore(s.DB)
	orderService := order.NewService(
		orderStore,
		cartService,
		userStore,
		s.eventEngine,
	)
	orderHandler := order.NewHandler(orderService, middleware)
	orderHandler.RegisterRoutes(r)

	// booking feature
	bookingStore := booking.NewStore(s.DB)
	bookingService := booking.NewService(
		bookingStore,
		s.catalogStore,
		userStore,
	)
	bookingHandler := booking.NewHandler(bookingService, middleware)
	bookingHandler.RegisterRoutes(r)

	// adoption feature
	adoptionStore := adoption.NewStore(s.DB)
	adoptionService := adoption.NewService(
		adoptionStore,
		s.catalogStore,
		userStore,
	)
	adoptionHandler := adoption.NewHandler(adoptionService, middleware)
	adoptionHandler.RegisterRoutes(r)

	// contact feature
	contactStore := contact.NewStore(s.DB)
	contactService := contact.NewService(contactStore)
	contactHandler := contact.NewHandler(contactService)
	contactHandler.RegisterRoutes(r)

	// admin feature
	adminStore := admin.NewStore(s.DB)
	adminService := admin.NewService(
		adminStore,
		s.TokenManager,
	)
	adminHandler := admin.NewHandler(adminService, middleware)
	adminHandler.RegisterRoutes(r)

	return r
}
