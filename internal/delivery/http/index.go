package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves a minimal HTML form for manual testing
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>PriceScout</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: sans-serif; max-width: 600px; margin: 50px auto; padding: 20px; background: #f5f5f5; }
        .container { background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .form-group { margin-bottom: 20px; }
        label { display: block; margin-bottom: 5px; color: #555; font-weight: 500; }
        input { width: 100%; padding: 10px; border: 1px solid #ddd; border-radius: 4px; box-sizing: border-box; }
        button { background: #4285f4; color: white; padding: 12px 24px; border: none; border-radius: 4px; font-size: 16px; cursor: pointer; width: 100%; }
        button:hover { background: #357ae8; }
        .error { color: #d93025; margin-top: 10px; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>PriceScout</h1>
        <form id="searchForm">
            <div class="form-group">
                <label for="product_name">Product Name:</label>
                <input type="text" id="product_name" name="product_name"
                       placeholder="e.g., Canon Powershot G7X Mark III" required>
            </div>
            <div class="form-group">
                <label for="marketplace">Marketplace:</label>
                <input type="text" id="marketplace" name="marketplace"
                       placeholder="e.g., Trendyol" required>
            </div>
            <button type="submit">Search &amp; Redirect</button>
            <div id="error" class="error"></div>
        </form>
    </div>
    <script>
        document.getElementById('searchForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const productName = document.getElementById('product_name').value;
            const marketplace = document.getElementById('marketplace').value;
            const errorDiv = document.getElementById('error');
            errorDiv.textContent = '';

            try {
                const response = await fetch('/search-and-redirect?product_name=' + encodeURIComponent(productName) + '&marketplace=' + encodeURIComponent(marketplace));
                if (response.redirected) {
                    window.location.href = response.url;
                } else if (!response.ok) {
                    const error = await response.json();
                    errorDiv.textContent = error.error || 'An error occurred';
                }
            } catch (error) {
                errorDiv.textContent = 'Network error: ' + error.message;
            }
        });
    </script>
</body>
</html>
`
