package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	profilevo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/domain/user"
	vo "github.com/rawad-inc/rawad/internal/domain/user/valueobjects"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      string
	Country   string

	// Job seeker fields, required when the role is job_seeker.
	Specialization  string
	FieldOfWork     string
	DateOfBirth     time.Time
	ExperienceLevel string

	// Publisher fields, used when the role is job_publisher. The publisher
	// type decides whether a company or an individual client profile is
	// created.
	PublisherType       string
	CompanyName         string
	CompanyType         string
	LicenseNumber       string
	CompanySize         string
	BusinessName        string
	BusinessDescription string
}

type RegisterUserResult struct {
	UserID    uint
	PublicID  string
	ProfileID uint
}

// RegisterUserUseCase creates a user account together with the profile
// that matches the role, in the same transaction. Supporters get a bare
// profile whose country may be filled in later; job seekers must provide
// their professional details up front; publishers get a company or an
// individual client profile depending on the publisher type. Staff users
// carry no profile.
type RegisterUserUseCase struct {
	userRepo       user.Repository
	supporterRepo  profile.SupporterRepository
	jobSeekerRepo  profile.JobSeekerRepository
	companyRepo    profile.CompanyRepository
	individualRepo profile.IndividualClientRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	supporterRepo profile.SupporterRepository,
	jobSeekerRepo profile.JobSeekerRepository,
	companyRepo profile.CompanyRepository,
	individualRepo profile.IndividualClientRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		supporterRepo:  supporterRepo,
		jobSeekerRepo:  jobSeekerRepo,
		companyRepo:    companyRepo,
		individualRepo: individualRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("username is already taken")
	}

	existing, err = uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	u, err := user.NewUser(cmd.Username, cmd.Email, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u.UpdateName(cmd.FirstName, cmd.LastName)

	var profileID uint
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, u); err != nil {
			return err
		}

		switch role {
		case vo.RoleSupporter:
			prof, err := profile.NewSupporterProfile(u.ID(), cmd.Country)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.supporterRepo.Save(txCtx, prof); err != nil {
				return err
			}
			profileID = prof.ID()

		case vo.RoleJobSeeker:
			level, err := profilevo.NewExperienceLevel(cmd.ExperienceLevel)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			prof, err := profile.NewJobSeekerProfile(u.ID(), cmd.Specialization, cmd.FieldOfWork, cmd.DateOfBirth, level)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.jobSeekerRepo.Save(txCtx, prof); err != nil {
				return err
			}
			profileID = prof.ID()

		case vo.RoleJobPublisher:
			id, err := uc.createPublisherProfile(txCtx, u.ID(), cmd)
			if err != nil {
				return err
			}
			profileID = id
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to register user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", role, "profile_id", profileID)

	return &RegisterUserResult{
		UserID:    u.ID(),
		PublicID:  u.PublicID().String(),
		ProfileID: profileID,
	}, nil
}

func (uc *RegisterUserUseCase) createPublisherProfile(ctx context.Context, userID uint, cmd RegisterUserCommand) (uint, error) {
	if profilevo.PublisherType(cmd.PublisherType) == profilevo.PublisherCompany {
		size := profilevo.CompanySize(cmd.CompanySize)
		prof, err := profile.NewCompanyProfile(userID, cmd.CompanyName, cmd.CompanyType, cmd.LicenseNumber, size)
		if err != nil {
			return 0, errors.NewValidationError(err.Error())
		}

		dup, err := uc.companyRepo.FindByLicenseNumber(ctx, cmd.LicenseNumber)
		if err != nil {
			return 0, err
		}
		if dup != nil {
			return 0, errors.NewConflictError("license number is already registered")
		}

		if err := uc.companyRepo.Save(ctx, prof); err != nil {
			return 0, err
		}
		return prof.ID(), nil
	}

	prof, err := profile.NewIndividualClientProfile(userID, profilevo.PublisherType(cmd.PublisherType), cmd.BusinessName, cmd.BusinessDescription)
	if err != nil {
		return 0, errors.NewValidationError(err.Error())
	}
	if err := uc.individualRepo.Save(ctx, prof); err != nil {
		return 0, err
	}
	return prof.ID(), nil
}
