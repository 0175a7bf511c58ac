package services

// ServiceContainer bundles the services the handlers depend on.
type ServiceContainer struct {
	Account     AccountSvc
	Transaction TransactionSvc
	Balance     BalanceSvc
}
