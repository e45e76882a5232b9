package lambda

import "fmt"

// ProxySource is the kind of event the Lambda function is invoked with.
type ProxySource string

const (
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"
	ProxySourceAlb          ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

// Validate returns an error for unknown proxy sources.
func (p ProxySource) Validate() error {
	switch p {
	case ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb:
		return nil
	default:
		return fmt.Errorf("invalid proxy source: %s", p)
	}
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}
