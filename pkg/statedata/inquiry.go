package statedata

import (
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/resolver"
)

// inquiryStateData is the decision table for the default-inquiry process.
// There is no payment flow, so the table is nearly all default.
func inquiryStateData(processName, state string, params Params) *StateData {
	base := StateData{ProcessName: processName, ProcessState: state}

	return resolver.New[*StateData](state, string(params.Role)).
		Cond([]string{process.InquiryStateFreeInquiry, resolver.Wildcard}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Default(func() *StateData {
			return &base
		}).
		Resolve()
}
