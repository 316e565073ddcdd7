package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name used by init and by default lookups.
const FileName = "mileageLog.conf"

// Keys read by reconciliation.
const (
	KeyMileageHeaderLine     = "mileageHeaderLine"
	KeyTollsHeaderLine       = "tollsHeaderLine"
	KeyMileageRate           = "mileageRate"
	KeyDistanceToRowan       = "distanceToRowan"
	KeyHomeAddressStreetName = "homeAddressStreetName"
)

// Keys passed through to the report header.
const (
	KeyEmployeeName           = "employeeName"
	KeyEmployeeID             = "employeeId"
	KeyEmployeeExtension      = "employeeExtension"
	KeyEmployeeDepartment     = "employeeDepartment"
	KeyEmployeeDepartmentHead = "employeeDepartmentHead"
	KeyEmployeeLocation       = "employeeLocation"
	KeyEmployeeEmail          = "employeeEmail"
	KeyHomeAddressNumber      = "homeAddressStreetNumber"
	KeyHomeAddressAdditional  = "homeAddressAdditional"
	KeyHomeAddressCity        = "homeAddressCity"
	KeyHomeAddressState       = "homeAddressState"
	KeyHomeAddressZip         = "homeAddressZip"
	KeyFund                   = "fund"
	KeyOrganization           = "organization"
	KeyMileageAccount         = "mileageAccount"
	KeyProgram                = "program"
	KeyTollsAccount           = "tollsAccount"
)

// Settings maps option names to string values. The settings file is a flat
// object, written as YAML or JSON (YAML reads both).
type Settings map[string]string

// Get returns the value for key, or "" when unset.
func (s Settings) Get(key string) string {
	return s[key]
}

// Clone returns an independent copy.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Parse decodes settings file contents.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if s == nil {
		s = Settings{}
	}
	return s, nil
}

// Load reads a settings file from disk.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes settings to a YAML file.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the settings a new installation starts from. The header
// lines match the column names of the stock trip logger and E-ZPass exports.
func Default() Settings {
	return Settings{
		KeyMileageHeaderLine:      "Date,Purpose,Business Line,From,To,Miles,Time Started,Time Ended,Vehicle,Notes,Map Image URL",
		KeyTollsHeaderLine:        "POSTING DATE,TRANSACTION DATE,TAG/PLATE NUMBER,AGENCY,DESCRIPTION,ENTRY TIME,ENTRY PLAZA,ENTRY LANE,EXIT TIME,EXIT PLAZA,EXIT LANE,VEHICLE TYPE CODE,AMOUNT,PREPAID,PLAN/RATE,FARE TYPE,BALANCE",
		KeyMileageRate:            "0.545",
		KeyDistanceToRowan:        "0",
		KeyHomeAddressStreetName:  "",
		KeyEmployeeName:           "",
		KeyEmployeeID:             "",
		KeyEmployeeExtension:      "",
		KeyEmployeeDepartment:     "",
		KeyEmployeeDepartmentHead: "",
		KeyEmployeeLocation:       "",
		KeyEmployeeEmail:          "",
		KeyHomeAddressNumber:      "",
		KeyHomeAddressAdditional:  "",
		KeyHomeAddressCity:        "",
		KeyHomeAddressState:       "",
		KeyHomeAddressZip:         "",
		KeyFund:                   "",
		KeyOrganization:           "",
		KeyMileageAccount:         "",
		KeyProgram:                "",
		KeyTollsAccount:           "",
	}
}
