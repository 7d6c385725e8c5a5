package http

import (
	"time"

	"gorm.io/gorm"

	donationUC "github.com/rawad-inc/rawad/internal/application/donation/usecases"
	mobileUC "github.com/rawad-inc/rawad/internal/application/mobile/usecases"
	ratingUC "github.com/rawad-inc/rawad/internal/application/rating/usecases"
	supporterUC "github.com/rawad-inc/rawad/internal/application/supporter/usecases"
	ticketUC "github.com/rawad-inc/rawad/internal/application/ticket/usecases"
	userUC "github.com/rawad-inc/rawad/internal/application/user/usecases"
	workspaceUC "github.com/rawad-inc/rawad/internal/application/workspace/usecases"
	"github.com/rawad-inc/rawad/internal/infrastructure/cache"
	"github.com/rawad-inc/rawad/internal/infrastructure/config"
	"github.com/rawad-inc/rawad/internal/infrastructure/email"
	"github.com/rawad-inc/rawad/internal/infrastructure/geocoding"
	"github.com/rawad-inc/rawad/internal/infrastructure/notification"
	"github.com/rawad-inc/rawad/internal/infrastructure/phone"
	"github.com/rawad-inc/rawad/internal/infrastructure/repository"
	"github.com/rawad-inc/rawad/internal/infrastructure/tasks"
	donationhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/donation"
	mobilehandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/mobile"
	ratinghandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/rating"
	supporterhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/supporter"
	tickethandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/ticket"
	userhandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/user"
	workspacehandlers "github.com/rawad-inc/rawad/internal/interfaces/http/handlers/workspace"
	"github.com/rawad-inc/rawad/internal/shared/db"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// Container wires repositories, use cases and handlers together. Handlers
// are built once at startup.
type Container struct {
	UserHandler      *userhandlers.UserHandler
	SupporterHandler *supporterhandlers.SupporterHandler
	DonationHandler  *donationhandlers.DonationHandler
	RatingHandler    *ratinghandlers.RatingHandler
	MobileHandler    *mobilehandlers.MobileHandler
	TicketHandler    *tickethandlers.TicketHandler
	WorkSpaceHandler *workspacehandlers.WorkSpaceHandler
}

func NewContainer(cfg *config.Config, database *gorm.DB, log logger.Interface) *Container {
	// Repositories
	userRepo := repository.NewUserRepository(database)
	supporterRepo := repository.NewSupporterProfileRepository(database)
	jobSeekerRepo := repository.NewJobSeekerProfileRepository(database)
	companyRepo := repository.NewCompanyProfileRepository(database)
	individualRepo := repository.NewIndividualClientProfileRepository(database)
	donationRepo := repository.NewDonationRepository(database)
	ratingRepo := repository.NewRatingRepository(database)
	mobileRepo := repository.NewMobileNumberRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	workspaceRepo := repository.NewWorkSpaceRepository(database)

	// Infrastructure services
	txManager := db.NewTransactionManager(database)
	dispatcher := tasks.NewDispatcher(log)
	statsCache := cache.NewDonationStatsStore(cache.Get())
	ratingCache := cache.NewRatingStore(cache.Get())
	parser := phone.NewParser()
	codeSender := notification.NewLogCodeSender(log)
	geocoder := geocoding.NewNominatimService(&cfg.Geocoder)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	statusNotifier := email.NewTicketStatusNotifier(userRepo, emailService)

	// Supporter
	statsService := supporterUC.NewDonationStatsService(donationRepo, statsCache, log)
	updateBadgeUC := supporterUC.NewUpdateBadgeLevelUseCase(supporterRepo, statsService, log)
	getStatsUC := supporterUC.NewGetDonationStatsUseCase(statsService)
	getProfileUC := supporterUC.NewGetSupporterProfileUseCase(supporterRepo, statsService)
	updateProfileUC := supporterUC.NewUpdateSupporterProfileUseCase(supporterRepo, updateBadgeUC, log)

	// User
	registerUserUC := userUC.NewRegisterUserUseCase(userRepo, supporterRepo, jobSeekerRepo, companyRepo, individualRepo, txManager, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo)

	// Donation
	recordDonationUC := donationUC.NewRecordDonationUseCase(donationRepo, supporterRepo, statsService, updateBadgeUC, log)
	listDonationsUC := donationUC.NewListDonationsUseCase(donationRepo)

	// Rating
	rateJobSeekerUC := ratingUC.NewRateJobSeekerUseCase(ratingRepo, jobSeekerRepo, ratingCache, log)
	getRatingUC := ratingUC.NewGetJobSeekerRatingUseCase(ratingRepo, ratingCache, log)

	// Mobile
	cooldown := time.Duration(cfg.Verification.CodeCooldownSeconds) * time.Second
	registerMobileUC := mobileUC.NewRegisterMobileNumberUseCase(mobileRepo, parser, log)
	requestCodeUC := mobileUC.NewRequestVerificationCodeUseCase(mobileRepo, codeSender, dispatcher, cooldown, log)
	verifyCodeUC := mobileUC.NewVerifyMobileCodeUseCase(mobileRepo, log)
	updateMobileUC := mobileUC.NewUpdateMobileNumberUseCase(mobileRepo, parser, log)
	getMobileUC := mobileUC.NewGetMobileNumberUseCase(mobileRepo)

	// Ticket
	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, log)
	addCommentUC := ticketUC.NewAddCommentUseCase(ticketRepo, log)
	changeStatusUC := ticketUC.NewChangeTicketStatusUseCase(ticketRepo, statusNotifier, dispatcher, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo)

	// Workspace
	geocodeUC := workspaceUC.NewGeocodeLocationUseCase(workspaceRepo, geocoder, log)
	createWorkSpaceUC := workspaceUC.NewCreateWorkSpaceUseCase(workspaceRepo, geocodeUC, dispatcher, log)
	getWorkSpaceUC := workspaceUC.NewGetWorkSpaceUseCase(workspaceRepo)
	listWorkSpacesUC := workspaceUC.NewListWorkSpacesUseCase(workspaceRepo)

	return &Container{
		UserHandler:      userhandlers.NewUserHandler(registerUserUC, getUserUC),
		SupporterHandler: supporterhandlers.NewSupporterHandler(getProfileUC, updateProfileUC, getStatsUC, updateBadgeUC),
		DonationHandler:  donationhandlers.NewDonationHandler(recordDonationUC, listDonationsUC),
		RatingHandler:    ratinghandlers.NewRatingHandler(rateJobSeekerUC, getRatingUC),
		MobileHandler:    mobilehandlers.NewMobileHandler(registerMobileUC, requestCodeUC, verifyCodeUC, updateMobileUC, getMobileUC),
		TicketHandler:    tickethandlers.NewTicketHandler(createTicketUC, addCommentUC, changeStatusUC, getTicketUC, listTicketsUC),
		WorkSpaceHandler: workspacehandlers.NewWorkSpaceHandler(createWorkSpaceUC, getWorkSpaceUC, listWorkSpacesUC),
	}
}
