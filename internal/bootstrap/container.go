package bootstrap

import (
	"context"
	"log"

	"imbewu-be/internal/config"
	"imbewu-be/internal/controller"
	"imbewu-be/internal/pkg/logger"
	"imbewu-be/internal/pkg/mailer"
	"imbewu-be/internal/repository/memory"
	"imbewu-be/internal/repository/redisrepo"
	"imbewu-be/internal/repository/unitofwork"
	"imbewu-be/internal/service"
	"imbewu-be/internal/websocket"
	"imbewu-be/pkg/barcode"
	"imbewu-be/pkg/offclient"

	pktNats "imbewu-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	VerificationController controller.IVerificationController
	ScannerController      controller.IScannerController
	CertificateController  controller.ICertificateController
	AppointmentController  controller.IAppointmentController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Messaging
	WebSocketHub *websocket.Hub
	NatsSub      *pktNats.Subscriber
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub (also relays scanner engine commands to browser clients)
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Domain Collaborators
	productClient := offclient.NewClient(cfg.Upstream.FoodFactsBaseURL, cfg.Upstream.CacheTTL)
	scannerSessions := memory.NewScannerRepository(cfg.Scanner.SessionTTL)
	captureEngine := barcode.NewCommandEngine(rdb)
	recentRepo := redisrepo.NewRecentVerificationRepository(rdb)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.VerificationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.VerificationTopic,
		uowFactory,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	userService := service.NewUserService(uowFactory, recentRepo)

	verificationService := service.NewVerificationService(
		productClient,
		uowFactory,
		recentRepo,
		publisherService,
		sysLogger,
	)
	scannerService := service.NewScannerService(
		scannerSessions,
		captureEngine,
		cfg.Scanner.SettleDelay,
		sysLogger,
	)
	certificateService := service.NewCertificateService(
		uowFactory,
		productClient,
		emailService,
		natsPub,
	)
	appointmentService := service.NewAppointmentService(uowFactory, natsPub)
	notificationService := service.NewNotificationService(uowFactory, wsHub, sysLogger)

	// 5. Event Fan-Out
	// Every domain event becomes a persisted notification plus a live push.
	if natsSub != nil {
		if err := natsSub.Subscribe("events.>", "notification-service", notificationService.HandleEvent); err != nil {
			log.Printf("[WARN] Failed to subscribe notification service: %v", err)
		}
	}

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		VerificationController: controller.NewVerificationController(verificationService),
		ScannerController:      controller.NewScannerController(scannerService, verificationService),
		CertificateController:  controller.NewCertificateController(certificateService),
		AppointmentController:  controller.NewAppointmentController(appointmentService),
		NotificationController: controller.NewNotificationController(notificationService, wsHub, wsLogger),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		NatsSub:         natsSub,
	}
}
