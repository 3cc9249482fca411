package dictionary

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/JustAnotherCloudGuy/define-the-cloud/internal/norm"
	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// Author attributes a definition to the person who wrote it.
type Author struct {
	Name string `dynamodbav:"name" json:"name"`
}

// Definition is a single dictionary entry. The ID doubles as the partition
// key and is globally unique; word uniqueness is assumed by callers, not
// enforced here.
type Definition struct {
	ID           string `dynamodbav:"id" json:"id"`
	Word         string `dynamodbav:"word" json:"word"`
	Content      string `dynamodbav:"content" json:"content"`
	Tag          string `dynamodbav:"tag" json:"tag"`
	Abbreviation string `dynamodbav:"abbreviation" json:"abbreviation"`
	Author       Author `dynamodbav:"author" json:"author"`
}

// Shadow attributes holding case-folded copies of the searchable fields.
// Filters compare against these so lookups ignore case regardless of how
// the definition was written.
const (
	attrSearchWord         = "search_word"
	attrSearchContent      = "search_content"
	attrSearchTag          = "search_tag"
	attrSearchAbbreviation = "search_abbreviation"
	attrSearchAuthor       = "search_author"
)

// searchAttributes lists every field free-text search ORs over.
var searchAttributes = []string{
	attrSearchWord,
	attrSearchContent,
	attrSearchTag,
	attrSearchAbbreviation,
	attrSearchAuthor,
}

// document marshals the definition together with its search shadow
// attributes.
func (d *Definition) document() (store.Document, error) {
	item, err := attributevalue.MarshalMap(d)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	item[attrSearchWord] = &types.AttributeValueMemberS{Value: norm.Fold(d.Word)}
	item[attrSearchContent] = &types.AttributeValueMemberS{Value: norm.Fold(d.Content)}
	item[attrSearchTag] = &types.AttributeValueMemberS{Value: norm.Fold(d.Tag)}
	item[attrSearchAbbreviation] = &types.AttributeValueMemberS{Value: norm.Fold(d.Abbreviation)}
	item[attrSearchAuthor] = &types.AttributeValueMemberS{Value: norm.Fold(d.Author.Name)}
	return store.Document(item), nil
}

func unmarshalDefinition(doc store.Document) (*Definition, error) {
	var d Definition
	if err := attributevalue.UnmarshalMap(doc, &d); err != nil {
		return nil, fmt.Errorf("unmarshal definition: %w", err)
	}
	return &d, nil
}
