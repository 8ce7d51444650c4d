package config

type PushConfig struct {
	FCM *FCMConfig `yaml:"fcm"`
}

type FCMConfig struct {
	EmergencyTopic string `yaml:"emergency_topic"`
}

func loadPushConfig() *PushConfig {
	return &PushConfig{
		FCM: &FCMConfig{
			EmergencyTopic: getEnv("FCM_EMERGENCY_TOPIC", ""),
		},
	}
}
