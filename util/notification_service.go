// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

// NotificationService turns workflow events into user-facing
// notifications. Delivery is log-backed for now; the subscription points
// are where a queue or mail client would hang.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SubscribeAll wires the service to the workflow events it cares about.
func (n *NotificationService) SubscribeAll(bus *EventBus) {
	bus.Subscribe(EventLeaveTransitioned, n.onLeaveTransitioned)
	bus.Subscribe(EventTaskReviewSubmitted, n.onTaskReviewSubmitted)
	bus.Subscribe(EventTaskVerified, n.onTaskVerified)
}

func (n *NotificationService) onLeaveTransitioned(ctx context.Context, event Event) error {
	lr, ok := event.Payload.(model.LeaveRequest)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	logger.Info("NOTIFICATION: Leave request moved",
		zap.String("leaveRequestID", lr.ID),
		zap.String("employeeId", lr.EmployeeID),
		zap.String("status", lr.Status))
	return nil
}

func (n *NotificationService) onTaskReviewSubmitted(ctx context.Context, event Event) error {
	task, ok := event.Payload.(model.Task)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	logger.Info("NOTIFICATION: Task submitted for review",
		zap.String("taskID", task.ID),
		zap.String("assignedBy", task.AssignedBy))
	return nil
}

func (n *NotificationService) onTaskVerified(ctx context.Context, event Event) error {
	task, ok := event.Payload.(model.Task)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	logger.Info("NOTIFICATION: Task verification decided",
		zap.String("taskID", task.ID),
		zap.String("assignedTo", task.AssignedTo),
		zap.String("verificationStatus", task.VerificationStatus))
	return nil
}
