package reportapi

import (
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// Reports travel as protobuf Structs. User ids are carried as strings,
// a Struct number is a double.

func (r *ReportResult) ToStruct() (*structpb.Struct, error) {
	records := make([]interface{}, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, map[string]interface{}{
			"category": rec.Category,
			"spent":    rec.Spent,
			"limit":    rec.Limit,
		})
	}
	fields := map[string]interface{}{
		"userId":      strconv.FormatInt(r.UserID, 10),
		"period":      r.Period,
		"currency":    r.Currency,
		"records":     records,
		"totalSpent":  r.TotalSpent,
		"totalIncome": r.TotalIncome,
		"net":         r.Net,
	}
	if r.Status != nil {
		fields["status"] = r.Status.fields()
	}
	s, err := structpb.NewStruct(fields)
	return s, errors.Wrap(err, "encode report")
}

func ReportFromStruct(s *structpb.Struct) (*ReportResult, error) {
	f := s.GetFields()
	userID, err := strconv.ParseInt(f["userId"].GetStringValue(), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "decode report user id")
	}
	r := &ReportResult{
		UserID:      userID,
		Period:      f["period"].GetStringValue(),
		Currency:    f["currency"].GetStringValue(),
		TotalSpent:  f["totalSpent"].GetNumberValue(),
		TotalIncome: f["totalIncome"].GetNumberValue(),
		Net:         f["net"].GetNumberValue(),
	}
	for _, v := range f["records"].GetListValue().GetValues() {
		rec := v.GetStructValue().GetFields()
		r.Records = append(r.Records, ReportRecord{
			Category: rec["category"].GetStringValue(),
			Spent:    rec["spent"].GetNumberValue(),
			Limit:    rec["limit"].GetNumberValue(),
		})
	}
	if st, ok := f["status"]; ok {
		r.Status = statusFromFields(st.GetStructValue().GetFields())
	}
	return r, nil
}

func (s *OperationStatus) fields() map[string]interface{} {
	return map[string]interface{}{
		"success": s.Success,
		"error":   s.Error,
	}
}

func (s *OperationStatus) ToStruct() (*structpb.Struct, error) {
	res, err := structpb.NewStruct(s.fields())
	return res, errors.Wrap(err, "encode status")
}

func StatusFromStruct(s *structpb.Struct) *OperationStatus {
	return statusFromFields(s.GetFields())
}

func statusFromFields(f map[string]*structpb.Value) *OperationStatus {
	return &OperationStatus{
		Success: f["success"].GetBoolValue(),
		Error:   f["error"].GetStringValue(),
	}
}
