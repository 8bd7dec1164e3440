package load

// DDL for the five tables, listed in dependency order so every FOREIGN KEY
// clause references a table that already exists.
var schema = []struct {
	name string
	ddl  string
}{
	{
		name: "customers",
		ddl: `CREATE TABLE customers (
			customer_id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			city TEXT,
			state TEXT,
			zip_code TEXT,
			country TEXT,
			date_registered TEXT,
			is_active INTEGER
		)`,
	},
	{
		name: "products",
		ddl: `CREATE TABLE products (
			product_id INTEGER PRIMARY KEY,
			product_name TEXT NOT NULL,
			category TEXT,
			description TEXT,
			price REAL NOT NULL,
			cost REAL,
			stock_quantity INTEGER,
			sku TEXT UNIQUE,
			brand TEXT,
			created_date TEXT,
			is_active INTEGER
		)`,
	},
	{
		name: "orders",
		ddl: `CREATE TABLE orders (
			order_id INTEGER PRIMARY KEY,
			customer_id INTEGER NOT NULL,
			order_date TEXT NOT NULL,
			status TEXT,
			shipping_address TEXT,
			shipping_city TEXT,
			shipping_state TEXT,
			shipping_zip TEXT,
			shipping_country TEXT,
			shipping_cost REAL,
			tax_amount REAL,
			subtotal REAL,
			total_amount REAL NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		)`,
	},
	{
		name: "order_items",
		ddl: `CREATE TABLE order_items (
			item_id INTEGER PRIMARY KEY,
			order_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL,
			discount REAL,
			subtotal REAL NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(order_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id)
		)`,
	},
	{
		name: "payments",
		ddl: `CREATE TABLE payments (
			payment_id INTEGER PRIMARY KEY,
			order_id INTEGER NOT NULL,
			payment_date TEXT NOT NULL,
			payment_method TEXT,
			amount REAL NOT NULL,
			status TEXT,
			transaction_id TEXT UNIQUE,
			FOREIGN KEY (order_id) REFERENCES orders(order_id)
		)`,
	},
}

// Orphan checks run after loading; every count must be zero.
var orphanChecks = []struct {
	label string
	query string
}{
	{
		label: "orders without a customer",
		query: `SELECT COUNT(*) FROM orders
			WHERE customer_id NOT IN (SELECT customer_id FROM customers)`,
	},
	{
		label: "order items without an order",
		query: `SELECT COUNT(*) FROM order_items
			WHERE order_id NOT IN (SELECT order_id FROM orders)`,
	},
	{
		label: "order items without a product",
		query: `SELECT COUNT(*) FROM order_items
			WHERE product_id NOT IN (SELECT product_id FROM products)`,
	},
	{
		label: "payments without an order",
		query: `SELECT COUNT(*) FROM payments
			WHERE order_id NOT IN (SELECT order_id FROM orders)`,
	},
}
