package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// CloudWatchAPI is the subset of the CloudWatch client we call.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Publisher emits checkout metrics. It is best-effort: a nil publisher is a
// valid no-op and publish failures are logged, never surfaced to callers.
type Publisher struct {
	client    CloudWatchAPI
	namespace string
	logger    *slog.Logger
}

// NewPublisher returns a Publisher bound to a namespace.
func NewPublisher(client CloudWatchAPI, namespace string, logger *slog.Logger) *Publisher {
	return &Publisher{client: client, namespace: namespace, logger: logger}
}

// NewFromEnv loads AWS config and builds a CloudWatch-backed publisher.
func NewFromEnv(ctx context.Context, namespace string, logger *slog.Logger) (*Publisher, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1" // default fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewPublisher(cloudwatch.NewFromConfig(cfg), namespace, logger), nil
}

// OrderCreated counts one created order, tagged with its payment method.
func (p *Publisher) OrderCreated(ctx context.Context, paymentMethod string) {
	if p == nil || p.client == nil {
		return
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(p.namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String("OrdersCreated"),
				Value:      sdkaws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{
					{
						Name:  sdkaws.String("PaymentMethod"),
						Value: sdkaws.String(paymentMethod),
					},
				},
			},
		},
	}

	if _, err := p.client.PutMetricData(ctx, input); err != nil {
		p.logger.Warn("put metric data failed", "error", err)
	}
}
