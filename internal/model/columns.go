package model

// Trip export columns read by reconciliation.
const (
	ColDate         = "Date"
	ColFrom         = "From"
	ColTo           = "To"
	ColMiles        = "Miles"
	ColTimeStarted  = "Time Started"
	ColTimeEnded    = "Time Ended"
	ColPurpose      = "Purpose"
	ColBusinessLine = "Business Line"
)

// Toll export columns read by reconciliation.
const (
	ColTollDate        = "TRANSACTION DATE"
	ColTollExitTime    = "EXIT TIME"
	ColTollDescription = "DESCRIPTION"
	ColTollAmount      = "AMOUNT"
)

// TripColumns lists the names a trips header template must contain.
var TripColumns = []string{
	ColDate, ColFrom, ColTo, ColMiles, ColTimeStarted, ColTimeEnded, ColPurpose, ColBusinessLine,
}

// TollColumns lists the names a tolls header template must contain.
var TollColumns = []string{
	ColTollDate, ColTollExitTime, ColTollDescription, ColTollAmount,
}
