package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const widgetURI = "ui://widget/mycf-job-list.html"

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "mycf-widgets-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testJobList(ctx, session)
	testReadWidget(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}

	for _, tool := range result.Tools {
		fmt.Printf("  tool: %s — %s\n", tool.Name, tool.Description)
	}
}

func testJobList(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: mycf-job-list")

	params := &mcp.CallToolParams{
		Name: "mycf-job-list",
		Arguments: map[string]any{
			"searchTerm": "software engineer",
			"limit":      5,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("mycf-job-list failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("mycf-job-list passed")
}

func testReadWidget(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: resources/read")

	result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: widgetURI})
	if err != nil {
		log.Printf("resources/read failed: %v", err)
		return
	}

	for _, content := range result.Contents {
		fmt.Printf("  resource %s (%s): %d bytes\n", content.URI, content.MIMEType, len(content.Text))
	}
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Printf("  text: %s\n", text.Text)
		}
	}

	if result.StructuredContent != nil {
		pretty, err := json.MarshalIndent(result.StructuredContent, "  ", "  ")
		if err == nil {
			fmt.Printf("  structured: %s\n", pretty)
		}
	}
}
