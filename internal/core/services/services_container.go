package services

import (
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Goal:      NewGoalService(repos.GoalRepo),
		Liability: NewLiabilityService(repos.LiabilityRepo),
		Profile:   NewProfileService(repos.ProfileRepo),
		Advisor:   NewAdvisorService(cfg.AdvisorBaseURL, cfg.AdvisorTimeout),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.GoalSvcFacade      = (*goalService)(nil)
	_ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)
	_ portssvc.ProfileSvcFacade   = (*profileService)(nil)
	_ portssvc.AdvisorSvcFacade   = (*advisorService)(nil)
)
