package services

// ServiceContainer holds instances of all the application services.
// It is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Session     SessionSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Photos      PhotoSvc
}
