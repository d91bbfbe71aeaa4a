// service/services.go
package service

import (
	"time"

	"github.com/spf13/viper"

	"github.com/orgdesk/orgdesk/audit"
	"github.com/orgdesk/orgdesk/dao"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/util"
)

type Services struct {
	Session    ISessionService
	Navigation INavigationService
	Resource   IResourceService
	Leave      ILeaveService
	Dashboard  IDashboardService
}

func InitializeServices(
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	resourceDAO := dao.NewResourceDAO(
		viper.GetString("backend.url"),
		viper.GetDuration("backend.timeout"),
	)
	departmentDAO := dao.NewDepartmentDAO(resourceDAO)

	cacheTTL := viper.GetDuration("redis.defaultCacheTTL")
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	decisionCache := policy.NewDecisionCache(cacheTTL)

	notificationSvc.SubscribeAll(eventBus)

	services := &Services{
		Session:    NewSessionService(departmentDAO, auditService, eventBus, decisionCache),
		Navigation: NewNavigationService(auditService, decisionCache),
		Resource:   NewResourceService(resourceDAO, validationUtil, auditService, eventBus),
		Leave:      NewLeaveService(resourceDAO, auditService, eventBus),
		Dashboard:  NewDashboardService(resourceDAO),
	}

	return services, nil
}
