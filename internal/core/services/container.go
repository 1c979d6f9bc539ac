package services

import (
	portsrepo "github.com/hisakata/kakeibo/internal/core/ports/repositories"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/platform/config"
)

// NewServiceContainer wires every core service against the repository
// provider and the vision extractor.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, extractor portssvc.VisionExtractor, cfg *config.Config) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	journalSvc := NewJournalService(repos.JournalRepo, accountSvc)
	ruleSvc := NewRuleService(repos.RuleRepo, cfg.RuleKeywordSeparator)
	categorizerSvc := NewCategorizerService(extractor)
	scanSvc := NewScanService(extractor, categorizerSvc, journalSvc, accountSvc, ruleSvc)
	reportingSvc := NewReportingService(repos.JournalRepo, repos.AccountRepo)
	userSvc := NewUserService(repos.UserRepo, accountSvc)

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Journal:     journalSvc,
		Rule:        ruleSvc,
		Categorizer: categorizerSvc,
		Scan:        scanSvc,
		Reporting:   reportingSvc,
		User:        userSvc,
	}
}
