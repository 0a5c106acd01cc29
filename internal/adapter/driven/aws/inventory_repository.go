package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/dskyberg/instance-count/internal/domain/entity"
	"github.com/dskyberg/instance-count/internal/domain/repository"
)

// EC2API is the subset of the EC2 client the repository uses.
type EC2API interface {
	ec2.DescribeInstancesAPIClient
	DescribeReservedInstances(ctx context.Context, params *ec2.DescribeReservedInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeReservedInstancesOutput, error)
}

// RDSAPI is the subset of the RDS client the repository uses.
type RDSAPI interface {
	rds.DescribeDBInstancesAPIClient
	rds.DescribeReservedDBInstancesAPIClient
}

// STSAPI is the subset of the STS client the repository uses.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

const (
	ec2RunningState = "running"
	activeState     = "active"
)

// InventoryRepositoryImpl implementa o InventoryRepository sobre EC2, RDS e STS.
type InventoryRepositoryImpl struct {
	ec2Client EC2API
	rdsClient RDSAPI
	stsClient STSAPI
}

// NewInventoryRepository loads the shared AWS configuration and builds the clients.
// Empty profile or region fall back to the SDK defaults.
func NewInventoryRepository(ctx context.Context, profile, region string) (repository.InventoryRepository, error) {
	cfg, err := loadAWSConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	return NewInventoryRepositoryWithClients(
		ec2.NewFromConfig(cfg),
		rds.NewFromConfig(cfg),
		sts.NewFromConfig(cfg),
	), nil
}

// NewInventoryRepositoryWithClients cria o repositório a partir de clientes já configurados.
func NewInventoryRepositoryWithClients(ec2Client EC2API, rdsClient RDSAPI, stsClient STSAPI) *InventoryRepositoryImpl {
	return &InventoryRepositoryImpl{
		ec2Client: ec2Client,
		rdsClient: rdsClient,
		stsClient: stsClient,
	}
}

func loadAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		if profile != "" {
			return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

func (r *InventoryRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}

func (r *InventoryRepositoryImpl) ListResources(ctx context.Context, family entity.Family) ([]entity.Resource, error) {
	switch family {
	case entity.FamilyEC2:
		return r.listRunningInstances(ctx)
	case entity.FamilyRDS:
		return r.listDBInstances(ctx)
	}
	return nil, fmt.Errorf("%w: %q", entity.ErrUnknownFamily, family)
}

func (r *InventoryRepositoryImpl) ListReservations(ctx context.Context, family entity.Family) ([]entity.Reservation, error) {
	switch family {
	case entity.FamilyEC2:
		return r.listReservedInstances(ctx)
	case entity.FamilyRDS:
		return r.listReservedDBInstances(ctx)
	}
	return nil, fmt.Errorf("%w: %q", entity.ErrUnknownFamily, family)
}

func (r *InventoryRepositoryImpl) listRunningInstances(ctx context.Context) ([]entity.Resource, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []ec2Types.Filter{
			{Name: aws.String("instance-state-name"), Values: []string{ec2RunningState}},
		},
	}

	var resources []entity.Resource
	paginator := ec2.NewDescribeInstancesPaginator(r.ec2Client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing EC2 instances: %w", err)
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				state := ""
				if instance.State != nil {
					state = string(instance.State.Name)
				}
				resources = append(resources, entity.Resource{
					ID:       aws.ToString(instance.InstanceId),
					Category: string(instance.InstanceType),
					State:    state,
				})
			}
		}
	}
	return resources, nil
}

func (r *InventoryRepositoryImpl) listReservedInstances(ctx context.Context) ([]entity.Reservation, error) {
	output, err := r.ec2Client.DescribeReservedInstances(ctx, &ec2.DescribeReservedInstancesInput{
		Filters: []ec2Types.Filter{
			{Name: aws.String("state"), Values: []string{activeState}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error describing EC2 reserved instances: %w", err)
	}

	reservations := make([]entity.Reservation, 0, len(output.ReservedInstances))
	for _, ri := range output.ReservedInstances {
		reservations = append(reservations, entity.Reservation{
			ID:       aws.ToString(ri.ReservedInstancesId),
			Category: string(ri.InstanceType),
			Count:    int(aws.ToInt32(ri.InstanceCount)),
			State:    string(ri.State),
			Start:    aws.ToTime(ri.Start),
			Duration: time.Duration(aws.ToInt64(ri.Duration)) * time.Second,
			End:      aws.ToTime(ri.End),
		})
	}
	return reservations, nil
}

// listDBInstances counts every DB instance regardless of status.
func (r *InventoryRepositoryImpl) listDBInstances(ctx context.Context) ([]entity.Resource, error) {
	var resources []entity.Resource
	paginator := rds.NewDescribeDBInstancesPaginator(r.rdsClient, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing RDS instances: %w", err)
		}
		for _, db := range output.DBInstances {
			resources = append(resources, entity.Resource{
				ID:       aws.ToString(db.DBInstanceIdentifier),
				Category: aws.ToString(db.DBInstanceClass),
				State:    aws.ToString(db.DBInstanceStatus),
			})
		}
	}
	return resources, nil
}

// listReservedDBInstances keeps active reservations only. RDS reports a
// start time and a duration in seconds instead of an end time.
func (r *InventoryRepositoryImpl) listReservedDBInstances(ctx context.Context) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	paginator := rds.NewDescribeReservedDBInstancesPaginator(r.rdsClient, &rds.DescribeReservedDBInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing RDS reserved instances: %w", err)
		}
		for _, ri := range output.ReservedDBInstances {
			state := aws.ToString(ri.State)
			if state != activeState {
				continue
			}
			reservations = append(reservations, entity.Reservation{
				ID:       aws.ToString(ri.ReservedDBInstanceId),
				Category: aws.ToString(ri.DBInstanceClass),
				Count:    int(aws.ToInt32(ri.DBInstanceCount)),
				State:    state,
				Start:    aws.ToTime(ri.StartTime),
				Duration: time.Duration(aws.ToInt32(ri.Duration)) * time.Second,
			})
		}
	}
	return reservations, nil
}
