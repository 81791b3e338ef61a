package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App       App
		Directory Directory
		JWT       JWT
		Minio     AppMinio
		RabbitMQ  AppRabbitMQ
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		Address                        string
		Timezone                       string
		EndpointPrefix                 string
		MaxRequests                    int
		ShutdownTimeout                int
		MaxTimeRequestsPerSeconds      int
		RequestBodyLimitInMegabyte     int
		BookingSessionTTLInMinutes     int
		OTPExpiredTimeInMinutes        int
		LoginSessionExpiredTimeInHours int
	}

	// Directory points at the upstream clinic directory.
	Directory struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    float64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName                      string
		ProfilePictureMaxUploadSizeInMB int64
	}

	AppRabbitMQ struct {
		BookingQueue string
		OTPQueue     string
	}
)
