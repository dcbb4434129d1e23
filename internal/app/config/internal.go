package config

type InternalConfig struct {
	App       App
	Predictor Predictor
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Address                     string
	EndpointPrefix              string
	MaxRequests                 int
	ShutdownTimeout             int
	MaxTimeRequestsPerSeconds   int
	RequestBodyLimitInMegabyte  int
	SessionExpiredTimeInMinutes int
	SubmitLockTimeInSeconds     int
	ImageMaxUploadSizeInMB      int64
}

type Predictor struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	RequestsPerSecond       int
	RequestBurst            int
}
