package constants

// NATS Subjects
const (
	SubjectRideCreated   = "ride.created"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideCanceled  = "ride.canceled"
	SubjectRideStarted   = "ride.started"
	SubjectRideCompleted = "ride.completed"
)
