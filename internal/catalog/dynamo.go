package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoRepository implements Repository on a single DynamoDB table with the
// pk/sk key shape described in model.go.
type DynamoRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRepository creates a repository over the given table. An optional
// endpoint override switches to an S3-compatible local stack (DynamoDB
// Local, LocalStack).
func NewDynamoRepository(awsCfg aws.Config, table, endpoint string) *DynamoRepository {
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return &DynamoRepository{client: client, table: table}
}

// Put writes one item unconditionally. The freshly generated id makes key
// collisions effectively impossible, so no condition expression is used.
func (r *DynamoRepository) Put(ctx context.Context, item Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal catalog item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put catalog item %q: %w", item.PK, err)
	}
	return nil
}

// ListByType pages through items whose partition key begins with the type's
// prefix. Partition keys only support equality in key conditions, so this is
// a filtered Scan; limit caps the number of keys evaluated per page, which
// means a page can come back short while more items remain (the presence of
// NextToken, not the page length, signals the end). Each returned page is
// sorted newest first by createdAt.
func (r *DynamoRepository) ListByType(ctx context.Context, mediaType string, limit int32, startToken string) (*Page, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("begins_with(pk, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: TypePrefix(mediaType)},
		},
		Limit: aws.Int32(limit),
	}

	if startToken != "" {
		t, err := decodeToken(startToken)
		if err != nil {
			return nil, err
		}
		in.ExclusiveStartKey = map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: t.PK},
			"sk": &types.AttributeValueMemberS{Value: t.SK},
		}
	}

	out, err := r.client.Scan(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("scan catalog for %q: %w", mediaType, err)
	}

	items := make([]Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var it Item
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("unmarshal catalog item: %w", err)
		}
		if err := it.DeriveIdentity(); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	sortNewestFirst(items)

	page := &Page{Items: items}
	if lek := out.LastEvaluatedKey; lek != nil {
		pk, sk, err := primaryKeyStrings(lek)
		if err != nil {
			return nil, err
		}
		page.NextToken = encodeToken(pk, sk)
	}
	return page, nil
}

// sortNewestFirst orders a page by createdAt descending. RFC 3339 timestamps
// sort correctly as strings.
func sortNewestFirst(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
}

func primaryKeyStrings(key map[string]types.AttributeValue) (string, string, error) {
	pk, ok := key["pk"].(*types.AttributeValueMemberS)
	if !ok {
		return "", "", fmt.Errorf("unexpected pk attribute in evaluated key")
	}
	sk, ok := key["sk"].(*types.AttributeValueMemberS)
	if !ok {
		return "", "", fmt.Errorf("unexpected sk attribute in evaluated key")
	}
	return pk.Value, sk.Value, nil
}
