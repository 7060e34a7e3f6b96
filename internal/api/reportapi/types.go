package reportapi

type ReportRecord struct {
	Category string
	Spent    float64
	Limit    float64
}

type OperationStatus struct {
	Success bool
	Error   string
}

// ReportResult is a finished period report on its way back to the bot.
type ReportResult struct {
	UserID      int64
	Period      string
	Currency    string
	Records     []ReportRecord
	TotalSpent  float64
	TotalIncome float64
	Net         float64
	Status      *OperationStatus
}

func (r *ReportResult) GetUserID() int64 {
	if r == nil {
		return 0
	}
	return r.UserID
}

func (r *ReportResult) GetStatus() *OperationStatus {
	if r == nil {
		return nil
	}
	return r.Status
}

func (s *OperationStatus) GetSuccess() bool {
	return s != nil && s.Success
}
