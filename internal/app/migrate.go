package app

import (
	"context"
	"fmt"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/request"
	"go-hrms/internal/requesttype"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates every table. Referenced tables come first.
func Migrate(db *gorm.DB) error {
	models := []any{
		&requesttype.RequestType{},
		&employee.Employee{},
		&request.Request{},
		&leave.LeaveBalance{},
		&timesheet.Task{},
		&timesheet.Entry{},
		&timesheet.Week{},
		&counter.Counter{},
		&kafka.OutboxRecord{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}

var seedRequestTypes = []requesttype.RequestType{
	{Code: "PAID_LEAVE", Name: "Paid Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "UNPAID_LEAVE", Name: "Unpaid Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "PAID_SICK_LEAVE", Name: "Paid Sick Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "UNPAID_SICK_LEAVE", Name: "Unpaid Sick Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "PARENTAL_LEAVE", Name: "Parental Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "OTHER_LEAVE", Name: "Other Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true},
	{Code: "WORK_FROM_HOME", Name: "Work From Home", Category: requesttype.CategoryOther, RequiresApproval: true},
	{Code: "WEEKLY_TIMESHEET", Name: "Weekly Timesheet", Category: requesttype.CategoryTimesheet, RequiresApproval: true},
	{Code: "PROFILE_ID_CHANGE", Name: "Profile ID Change", Category: requesttype.CategoryProfile, RequiresApproval: true},
}

var seedTasks = []timesheet.Task{
	{TaskCode: "PROJECT_WORK", Name: "Project work", TaskType: timesheet.TaskTypeProject},
	{TaskCode: "INTERNAL_MEETING", Name: "Internal meetings", TaskType: timesheet.TaskTypeProject},
	{TaskCode: "TRAINING", Name: "Training", TaskType: timesheet.TaskTypeProject},
	{TaskCode: "SUPPORT", Name: "Support and operations", TaskType: timesheet.TaskTypeProject},
	{TaskCode: "VACATION", Name: "Vacation", TaskType: timesheet.TaskTypeLeave},
	{TaskCode: "SICK_LEAVE", Name: "Sick leave", TaskType: timesheet.TaskTypeLeave},
	{TaskCode: "PUBLIC_HOLIDAY", Name: "Public holiday", TaskType: timesheet.TaskTypeLeave},
}

// Seed loads the request type catalog and the timesheet tasks. Running it again
// refreshes names but keeps whatever active flags an admin has set.
func Seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	types := requesttype.NewRepository(db)
	for _, rt := range seedRequestTypes {
		rt.ID = uuid.New()
		rt.IsActive = true
		if err := types.Upsert(ctx, &rt); err != nil {
			return fmt.Errorf("seed request type %s: %w", rt.Code, err)
		}
	}
	logger.Info("request types seeded", zap.Int("count", len(seedRequestTypes)))

	now := time.Now()
	for _, task := range seedTasks {
		task.ID = uuid.New()
		task.IsActive = true
		task.CreatedAt = now
		task.UpdatedAt = now
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "task_type", "updated_at"}),
		}).Create(&task).Error
		if err != nil {
			return fmt.Errorf("seed task %s: %w", task.TaskCode, err)
		}
	}
	logger.Info("timesheet tasks seeded", zap.Int("count", len(seedTasks)))

	return nil
}
