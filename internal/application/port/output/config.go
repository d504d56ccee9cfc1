package output

type ConfigPort interface {
	Get(key string) string
	Require(key string) (string, error)
	GetWithDefault(key string, defaultValue string) string
}
