package deployment

// Log messages
const (
	LogMsgDeploymentCreated  = "Deployment created"
	LogMsgDeploymentReturned = "Deployment return reconciled"
	LogMsgReturnNoop         = "Return reported no changes"
	LogMsgOverdueSweepDone   = "Overdue sweep finished"
	LogMsgOverdueItemSkipped = "Overdue sweep skipped deployment"
)
