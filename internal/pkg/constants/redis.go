package constants

// Redis key formats
const (
	// Location index
	KeyDriverGeo       = "driver:geo"          // GeoHash set of all driver locations
	KeyDriverAvailable = "driver:available:%s" // Format: driver:available:{driver_id}

	// Distance ledger
	KeyTripState       = "trip:state:%s"  // Format: trip:state:{ride_id}, hash of the live ledger state
	KeyTripEvents      = "trip:events:%s" // Format: trip:events:{ride_id}, list of TripLocationEvent
	KeyTripActiveRides = "trip:active"    // Set of ride ids with unflushed or live ledger state

	// Job queue
	KeyQueuePending = "%s:queue:%s"      // Format: {prefix}:queue:{queue_name}
	KeyJobLock      = "%s:job:%s"        // Format: {prefix}:job:{job_id}
	KeyJobResult    = "%s:job:result:%s" // Format: {prefix}:job:result:{job_id}

	// Notifications
	ChannelNotify = "notify:%s:%s" // Format: notify:{target}:{target_id}
)

// Ledger hash fields
const (
	FieldDriverLatitude  = "driver_lat"
	FieldDriverLongitude = "driver_lng"
	FieldDriverTimestamp = "driver_ts"
	FieldRiderLatitude   = "rider_lat"
	FieldRiderLongitude  = "rider_lng"
	FieldRiderTimestamp  = "rider_ts"
	FieldTotalDistance   = "total_m"
	FieldCompleted       = "completed"
)
